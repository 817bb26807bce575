package nn

import (
	"fmt"
	"strings"

	"github.com/clamp-ml/clamp/internal/tensor"
)

// HardTanh is a bounded identity activation module.
//
// Applies the element-wise function: f(x) = clamp(x, lower, upper).
//
// Inside the bounds it is the identity; outside it saturates. The default
// bounds [-1, 1] give the classic hard tanh used by binarized networks.
//
// Example:
//
//	ht := nn.NewHardTanh[*cpu.CPUBackend]()
//	output := ht.Forward(input) // values saturate to [-1, 1]
type HardTanh[B tensor.Backend] struct {
	lower float32
	upper float32
}

// NewHardTanh creates a HardTanh module with the default bounds [-1, 1].
func NewHardTanh[B tensor.Backend]() *HardTanh[B] {
	return NewHardTanhWithBounds[B](-1, 1)
}

// NewHardTanhWithBounds creates a HardTanh module with custom bounds.
// The bounds are not validated; callers must keep lower < upper.
func NewHardTanhWithBounds[B tensor.Backend](lower, upper float32) *HardTanh[B] {
	return &HardTanh[B]{
		lower: lower,
		upper: upper,
	}
}

// LowerBound returns the saturation floor.
func (h *HardTanh[B]) LowerBound() float32 {
	return h.lower
}

// UpperBound returns the saturation ceiling.
func (h *HardTanh[B]) UpperBound() float32 {
	return h.upper
}

// Forward applies f(x) = clamp(x, lower, upper).
func (h *HardTanh[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return HardTanhFunc(input, h.lower, h.upper)
}

// Parameters returns nil (HardTanh owns no parameters).
func (h *HardTanh[B]) Parameters() []*Parameter[B] {
	return nil
}

// Config returns the constructor arguments under stable attribute keys.
// Feeding the result back through NewActivation rebuilds an equivalent
// module.
func (h *HardTanh[B]) Config() map[string]float32 {
	return map[string]float32{
		attrLowerBound: h.lower,
		attrUpperBound: h.upper,
	}
}

// HardSigmoid is a piecewise-linear sigmoid activation module.
//
// Applies the element-wise function: f(x) = clamp(x + 0.5, 0, 1).
//
// Example:
//
//	hs := nn.NewHardSigmoid[*cpu.CPUBackend]()
//	output := hs.Forward(input) // values in [0, 1]
type HardSigmoid[B tensor.Backend] struct{}

// NewHardSigmoid creates a HardSigmoid module.
func NewHardSigmoid[B tensor.Backend]() *HardSigmoid[B] {
	return &HardSigmoid[B]{}
}

// Forward applies f(x) = clamp(x + 0.5, 0, 1).
func (h *HardSigmoid[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return HardSigmoidFunc(input)
}

// Parameters returns nil (HardSigmoid owns no parameters).
func (h *HardSigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}

// Config returns an empty map; HardSigmoid takes no arguments.
func (h *HardSigmoid[B]) Config() map[string]float32 {
	return map[string]float32{}
}

// Activation is a by-name activation module. The name is resolved
// through the registry at construction, so an unknown name fails fast
// instead of at the first Forward call.
//
// Example:
//
//	act, err := nn.NewActivation[*cpu.CPUBackend]("leaky_tanh", map[string]float32{"alpha": 0.1})
type Activation[B tensor.Backend] struct {
	name  string // Canonical registry name.
	attrs map[string]float32
}

// NewActivation creates an activation module from a registry name
// (canonical or alias) and optional attribute overrides. Attributes not
// provided fall back to the definition defaults.
func NewActivation[B tensor.Backend](name string, attrs map[string]float32) (*Activation[B], error) {
	def, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("nn: unknown activation %q (known: %s)", name, strings.Join(Names(), ", "))
	}

	merged := make(map[string]float32, len(def.Defaults))
	for k, v := range def.Defaults {
		merged[k] = v
	}
	for k, v := range attrs {
		if _, known := def.Defaults[k]; !known {
			return nil, fmt.Errorf("nn: activation %q has no attribute %q", def.Name, k)
		}
		merged[k] = v
	}

	return &Activation[B]{
		name:  def.Name,
		attrs: merged,
	}, nil
}

// Name returns the canonical activation name.
func (a *Activation[B]) Name() string {
	return a.name
}

// Forward dispatches to the matching functional-API call.
func (a *Activation[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	switch a.name {
	case NameHardTanh:
		return HardTanhFunc(input, a.attrs[attrLowerBound], a.attrs[attrUpperBound])
	case NameHardSigmoid:
		return HardSigmoidFunc(input)
	case NameLeakyTanh:
		return LeakyTanhFunc(input, a.attrs[attrAlpha])
	default:
		// Unreachable: NewActivation only accepts registered names.
		panic(fmt.Sprintf("nn: activation %q has no forward dispatch", a.name))
	}
}

// Parameters returns nil (activations own no parameters).
func (a *Activation[B]) Parameters() []*Parameter[B] {
	return nil
}

// Config returns a copy of the fully-defaulted attributes.
func (a *Activation[B]) Config() map[string]float32 {
	cfg := make(map[string]float32, len(a.attrs))
	for k, v := range a.attrs {
		cfg[k] = v
	}
	return cfg
}
