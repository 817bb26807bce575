package nn_test

import (
	"testing"

	"github.com/clamp-ml/clamp/backend/cpu"
	"github.com/clamp-ml/clamp/nn"
	"github.com/clamp-ml/clamp/tensor"
)

// Compile-time checks that the public aliases satisfy the public Module
// interface with a concrete backend.
var (
	_ nn.Module[*cpu.Backend] = (*nn.HardTanh[*cpu.Backend])(nil)
	_ nn.Module[*cpu.Backend] = (*nn.HardSigmoid[*cpu.Backend])(nil)
	_ nn.Module[*cpu.Backend] = (*nn.Activation[*cpu.Backend])(nil)
)

func TestPublicAPIModules(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{-2, 0, 2}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	ht := nn.NewHardTanh[*cpu.Backend]()
	y := ht.Forward(x)
	if y.Data()[0] != -1 || y.Data()[2] != 1 {
		t.Errorf("HardTanh(-2, 0, 2) = %v", y.Data())
	}

	act, err := nn.NewActivation[*cpu.Backend]("hard_sigmoid", nil)
	if err != nil {
		t.Fatalf("NewActivation: %v", err)
	}
	y = act.Forward(x)
	if y.Data()[0] != 0 || y.Data()[1] != 0.5 || y.Data()[2] != 1 {
		t.Errorf("hard_sigmoid(-2, 0, 2) = %v", y.Data())
	}
}

func TestPublicAPIRegistry(t *testing.T) {
	names := nn.Names()
	if len(names) != 3 {
		t.Fatalf("Names() = %v, want 3 entries", names)
	}

	def, ok := nn.Lookup("leaky_tanh")
	if !ok {
		t.Fatal("Lookup(leaky_tanh) failed")
	}
	if def.Name != "LeakyTanh" {
		t.Errorf("Lookup(leaky_tanh).Name = %q", def.Name)
	}

	if got := nn.GetAttr(def.Defaults, "alpha", 0); got != 0.2 {
		t.Errorf("default alpha = %v, want 0.2", got)
	}
}
