package nn

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clamp-ml/clamp/internal/backend/cpu"
	"github.com/clamp-ml/clamp/internal/tensor"
)

// Compile-time checks that the activation modules implement Module.
var (
	_ Module[*cpu.CPUBackend] = (*HardTanh[*cpu.CPUBackend])(nil)
	_ Module[*cpu.CPUBackend] = (*HardSigmoid[*cpu.CPUBackend])(nil)
	_ Module[*cpu.CPUBackend] = (*Activation[*cpu.CPUBackend])(nil)
)

func inputTensor(t *testing.T, backend *cpu.CPUBackend, data []float32) *tensor.Tensor[float32, *cpu.CPUBackend] {
	t.Helper()
	input, err := tensor.FromSlice(data, tensor.Shape{len(data)}, backend)
	require.NoError(t, err)
	return input
}

func TestHardTanhForward(t *testing.T) {
	backend := cpu.New()
	ht := NewHardTanh[*cpu.CPUBackend]()

	input := inputTensor(t, backend, []float32{-3, -1, -0.5, 0, 0.5, 1, 2})
	output := ht.Forward(input)

	assert.Equal(t, []float32{-1, -1, -0.5, 0, 0.5, 1, 1}, output.Data())
}

func TestHardTanhCustomBounds(t *testing.T) {
	backend := cpu.New()
	ht := NewHardTanhWithBounds[*cpu.CPUBackend](-2, 2)

	input := inputTensor(t, backend, []float32{-3, -2, 0, 1.5, 3})
	output := ht.Forward(input)

	assert.Equal(t, []float32{-2, -2, 0, 1.5, 2}, output.Data())
	assert.Equal(t, float32(-2), ht.LowerBound())
	assert.Equal(t, float32(2), ht.UpperBound())
}

func TestHardTanhIdentityInsideBounds(t *testing.T) {
	backend := cpu.New()
	ht := NewHardTanh[*cpu.CPUBackend]()

	data := []float32{-1, -0.9, -0.5, 0, 0.5, 0.9, 1}
	input := inputTensor(t, backend, data)
	output := ht.Forward(input)

	assert.Equal(t, data, output.Data())
}

func TestHardTanhIdempotent(t *testing.T) {
	backend := cpu.New()
	ht := NewHardTanh[*cpu.CPUBackend]()

	input := inputTensor(t, backend, []float32{-7, -1, 0, 1, 7})
	once := ht.Forward(input)
	twice := ht.Forward(once)

	assert.Equal(t, once.Data(), twice.Data())
}

func TestHardTanhPreservesInput(t *testing.T) {
	backend := cpu.New()
	ht := NewHardTanh[*cpu.CPUBackend]()

	input := inputTensor(t, backend, []float32{-5, 5})
	_ = ht.Forward(input)

	assert.Equal(t, []float32{-5, 5}, input.Data())
}

func TestHardTanhShapePreservation(t *testing.T) {
	backend := cpu.New()
	ht := NewHardTanh[*cpu.CPUBackend]()

	for _, shape := range []tensor.Shape{{3, 4}, {2, 3, 4}, {0}, {2, 0, 3}, {}} {
		input := tensor.Zeros[float32](shape, backend)
		output := ht.Forward(input)
		assert.True(t, output.Shape().Equal(shape), "shape %v not preserved: got %v", shape, output.Shape())
	}
}

func TestHardTanhNoParameters(t *testing.T) {
	assert.Nil(t, NewHardTanh[*cpu.CPUBackend]().Parameters())
	assert.Nil(t, NewHardSigmoid[*cpu.CPUBackend]().Parameters())
}

func TestHardTanhConfig(t *testing.T) {
	ht := NewHardTanhWithBounds[*cpu.CPUBackend](-0.5, 0.75)

	cfg := ht.Config()

	assert.Equal(t, map[string]float32{"lower_bound": -0.5, "upper_bound": 0.75}, cfg)
}

func TestHardSigmoidForward(t *testing.T) {
	backend := cpu.New()
	hs := NewHardSigmoid[*cpu.CPUBackend]()

	input := inputTensor(t, backend, []float32{-10, -0.5, 0, 0.5, 10})
	output := hs.Forward(input)

	assert.Equal(t, []float32{0, 0, 0.5, 1, 1}, output.Data())
}

func TestHardSigmoidConfigEmpty(t *testing.T) {
	assert.Empty(t, NewHardSigmoid[*cpu.CPUBackend]().Config())
}

func TestActivationByName(t *testing.T) {
	backend := cpu.New()

	act, err := NewActivation[*cpu.CPUBackend]("leaky_tanh", map[string]float32{"alpha": 0.1})
	require.NoError(t, err)
	assert.Equal(t, "LeakyTanh", act.Name())

	input := inputTensor(t, backend, []float32{-2, 0, 2})
	output := act.Forward(input)

	assert.InDelta(t, -1.1, output.Data()[0], 1e-6)
	assert.InDelta(t, 0, output.Data()[1], 1e-6)
	assert.InDelta(t, 1.1, output.Data()[2], 1e-6)
}

func TestActivationDefaults(t *testing.T) {
	backend := cpu.New()

	act, err := NewActivation[*cpu.CPUBackend]("LeakyTanh", nil)
	require.NoError(t, err)

	input := inputTensor(t, backend, []float32{2})
	output := act.Forward(input)

	// Default alpha is 0.2: leaky_tanh(2) = 1 + 0.2*(2-1) = 1.2.
	assert.InDelta(t, 1.2, output.Data()[0], 1e-6)
}

func TestActivationUnknownName(t *testing.T) {
	_, err := NewActivation[*cpu.CPUBackend]("swish", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown activation")
}

func TestActivationUnknownAttribute(t *testing.T) {
	_, err := NewActivation[*cpu.CPUBackend]("hard_tanh", map[string]float32{"slope": 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no attribute")
}

// TestConfigRoundTrip feeds a module's Config back through NewActivation
// and checks the rebuilt module computes the same function.
func TestConfigRoundTrip(t *testing.T) {
	backend := cpu.New()
	original := NewHardTanhWithBounds[*cpu.CPUBackend](-2, 2)

	rebuilt, err := NewActivation[*cpu.CPUBackend]("HardTanh", original.Config())
	require.NoError(t, err)

	input := inputTensor(t, backend, []float32{-3, -1, 0, 1, 3})
	assert.Equal(t, original.Forward(input).Data(), rebuilt.Forward(input).Data())
}

// TestConcurrentForward runs many goroutines through one shared module.
// Modules are immutable after construction, so this must be race-free.
func TestConcurrentForward(t *testing.T) {
	backend := cpu.New()
	ht := NewHardTanh[*cpu.CPUBackend]()
	input := inputTensor(t, backend, []float32{-2, -1, 0, 1, 2})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				output := ht.Forward(input)
				if output.Data()[0] != -1 || output.Data()[4] != 1 {
					t.Error("concurrent Forward produced wrong output")
					return
				}
			}
		}()
	}
	wg.Wait()
}
