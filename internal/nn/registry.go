package nn

import (
	"sort"

	"github.com/clamp-ml/clamp/internal/tensor"
)

// Canonical activation names.
const (
	NameHardTanh    = "HardTanh"
	NameHardSigmoid = "HardSigmoid"
	NameLeakyTanh   = "LeakyTanh"
)

// Attribute keys used in Config maps and NewActivation overrides.
const (
	attrLowerBound = "lower_bound"
	attrUpperBound = "upper_bound"
	attrAlpha      = "alpha"
)

// Definition describes one registered activation: its canonical name,
// lookup aliases, default attributes, and a backend-free Apply over raw
// tensors delegating to the reference kernels.
type Definition struct {
	Name     string
	Aliases  []string
	Defaults map[string]float32
	Apply    func(x *tensor.RawTensor, attrs map[string]float32) (*tensor.RawTensor, error)
}

// definitions is the static registry. Registration is an explicit
// literal map, not a side effect of package init order.
var definitions = map[string]*Definition{
	NameHardTanh: {
		Name:    NameHardTanh,
		Aliases: []string{"hard_tanh"},
		Defaults: map[string]float32{
			attrLowerBound: -1,
			attrUpperBound: 1,
		},
		Apply: func(x *tensor.RawTensor, attrs map[string]float32) (*tensor.RawTensor, error) {
			lower := GetAttr(attrs, attrLowerBound, -1)
			upper := GetAttr(attrs, attrUpperBound, 1)
			return tensor.Clamp(x, lower, upper)
		},
	},
	NameHardSigmoid: {
		Name:     NameHardSigmoid,
		Aliases:  []string{"hard_sigmoid"},
		Defaults: map[string]float32{},
		Apply: func(x *tensor.RawTensor, _ map[string]float32) (*tensor.RawTensor, error) {
			return tensor.HardSigmoid(x)
		},
	},
	NameLeakyTanh: {
		Name:    NameLeakyTanh,
		Aliases: []string{"leaky_tanh"},
		Defaults: map[string]float32{
			attrAlpha: 0.2,
		},
		Apply: func(x *tensor.RawTensor, attrs map[string]float32) (*tensor.RawTensor, error) {
			return tensor.LeakyTanh(x, GetAttr(attrs, attrAlpha, 0.2))
		},
	},
}

// aliases maps every alias to its canonical name.
var aliases = func() map[string]string {
	m := make(map[string]string)
	for name, def := range definitions {
		for _, alias := range def.Aliases {
			m[alias] = name
		}
	}
	return m
}()

// Lookup resolves a canonical name or alias to its Definition.
func Lookup(name string) (*Definition, bool) {
	if def, ok := definitions[name]; ok {
		return def, true
	}
	if canonical, ok := aliases[name]; ok {
		return definitions[canonical], true
	}
	return nil, false
}

// Names returns the sorted canonical names of all registered activations.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAttr reads an attribute from attrs, falling back to a default when
// the key is missing or attrs is nil.
func GetAttr(attrs map[string]float32, key string, fallback float32) float32 {
	if v, ok := attrs[key]; ok {
		return v
	}
	return fallback
}
