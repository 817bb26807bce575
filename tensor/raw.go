// Copyright 2025 The Clamp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/clamp-ml/clamp/internal/tensor"
)

// RawTensor is the low-level tensor representation: a flat byte buffer
// plus shape, strides and runtime type information. Operations treat
// RawTensors as immutable values.
type RawTensor = tensor.RawTensor

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Backend-free reference kernels over raw tensors. These are the
// portable, error-returning counterparts of the fused backend kernels.

// Clamp limits every element to the range [minVal, maxVal].
// The bounds are not validated; callers must keep minVal < maxVal.
func Clamp(x *RawTensor, minVal, maxVal float32) (*RawTensor, error) {
	return tensor.Clamp(x, minVal, maxVal)
}

// HardSigmoid applies the hard sigmoid element-wise: clamp(x + 0.5, 0, 1).
func HardSigmoid(x *RawTensor) (*RawTensor, error) {
	return tensor.HardSigmoid(x)
}

// LeakyTanh applies the leaky hard tanh element-wise:
// clamp(x, -1, 1) + alpha*(max(x, 1) - 1) + alpha*(min(x, -1) + 1).
func LeakyTanh(x *RawTensor, alpha float32) (*RawTensor, error) {
	return tensor.LeakyTanh(x, alpha)
}
