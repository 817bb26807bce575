// Copyright 2025 The Clamp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for the hard activation modules.
//
// Three activations are available, as modules, by-name modules, and
// plain functions:
//   - HardTanh: clamp(x, lower, upper), default bounds [-1, 1]
//   - HardSigmoid: clamp(x + 0.5, 0, 1)
//   - LeakyTanh: hard tanh with a non-zero slope past saturation
//
// Example:
//
//	backend := cpu.New()
//	ht := nn.NewHardTanh[*cpu.Backend]()
//	x := tensor.Randn[float32](tensor.Shape{4, 16}, backend)
//	y := ht.Forward(x)
package nn

import (
	"github.com/clamp-ml/clamp/internal/nn"
	"github.com/clamp-ml/clamp/tensor"
)

// Module is the base interface for all layer-stack components.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a named tensor owned by a module. The activation modules
// in this package own none.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new named parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Modules

// HardTanh is a bounded identity activation module:
// f(x) = clamp(x, lower, upper).
type HardTanh[B tensor.Backend] = nn.HardTanh[B]

// NewHardTanh creates a HardTanh module with the default bounds [-1, 1].
func NewHardTanh[B tensor.Backend]() *HardTanh[B] {
	return nn.NewHardTanh[B]()
}

// NewHardTanhWithBounds creates a HardTanh module with custom bounds.
// The bounds are not validated; callers must keep lower < upper.
func NewHardTanhWithBounds[B tensor.Backend](lower, upper float32) *HardTanh[B] {
	return nn.NewHardTanhWithBounds[B](lower, upper)
}

// HardSigmoid is a piecewise-linear sigmoid activation module:
// f(x) = clamp(x + 0.5, 0, 1).
type HardSigmoid[B tensor.Backend] = nn.HardSigmoid[B]

// NewHardSigmoid creates a HardSigmoid module.
func NewHardSigmoid[B tensor.Backend]() *HardSigmoid[B] {
	return nn.NewHardSigmoid[B]()
}

// Activation is a by-name activation module backed by the registry.
type Activation[B tensor.Backend] = nn.Activation[B]

// NewActivation creates an activation module from a registry name
// (canonical or alias) and optional attribute overrides.
// Unknown names and unknown attribute keys are errors.
func NewActivation[B tensor.Backend](name string, attrs map[string]float32) (*Activation[B], error) {
	return nn.NewActivation[B](name, attrs)
}

// Functional API

// HardTanhFunc clamps every element of x into [lower, upper].
func HardTanhFunc[B tensor.Backend](x *tensor.Tensor[float32, B], lower, upper float32) *tensor.Tensor[float32, B] {
	return nn.HardTanhFunc(x, lower, upper)
}

// HardSigmoidFunc computes clamp(x + 0.5, 0, 1) element-wise.
func HardSigmoidFunc[B tensor.Backend](x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return nn.HardSigmoidFunc(x)
}

// LeakyTanhFunc computes the leaky hard tanh with slope alpha.
func LeakyTanhFunc[B tensor.Backend](x *tensor.Tensor[float32, B], alpha float32) *tensor.Tensor[float32, B] {
	return nn.LeakyTanhFunc(x, alpha)
}

// Capability interfaces for fused backend kernels.

// HardSigmoidBackend is implemented by backends with a fused hard
// sigmoid kernel.
type HardSigmoidBackend = nn.HardSigmoidBackend

// LeakyTanhBackend is implemented by backends with a fused leaky hard
// tanh kernel.
type LeakyTanhBackend = nn.LeakyTanhBackend

// Registry

// Definition describes one registered activation.
type Definition = nn.Definition

// Lookup resolves a canonical name or alias to its Definition.
func Lookup(name string) (*Definition, bool) {
	return nn.Lookup(name)
}

// Names returns the sorted canonical names of all registered activations.
func Names() []string {
	return nn.Names()
}

// GetAttr reads an attribute from attrs, falling back to a default when
// the key is missing or attrs is nil.
func GetAttr(attrs map[string]float32, key string, fallback float32) float32 {
	return nn.GetAttr(attrs, key, fallback)
}
