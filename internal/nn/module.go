// Package nn implements the layer-style wrappers around the hard
// activation functions.
//
// This package provides:
//   - Module interface: base interface for layer-stack components
//   - Parameter: named tensors owned by modules (the activation modules
//     own none)
//   - HardTanh, HardSigmoid: concrete activation modules
//   - Activation: generic by-name activation module backed by the registry
//   - HardTanhFunc, HardSigmoidFunc, LeakyTanhFunc: functional API
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics:
// modules compose by delegation, never inheritance.
package nn

import (
	"github.com/clamp-ml/clamp/internal/tensor"
)

// Module is the base interface for all layer-stack components.
//
// Every module must implement:
//   - Forward: compute output from input
//   - Parameters: return all owned parameters
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// For the activation modules in this package the output shape always
	// equals the input shape and the input is never mutated.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all parameters of this module.
	//
	// Returns nil for modules without parameters, which is every
	// activation module in this package.
	Parameters() []*Parameter[B]
}
