// Copyright 2025 The Clamp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure-Go CPU backend.
package cpu

import (
	internalcpu "github.com/clamp-ml/clamp/internal/backend/cpu"
	"github.com/clamp-ml/clamp/tensor"
)

// Backend represents the CPU backend implementation.
//
// Element-wise kernels run chunk-parallel for large tensors; the fused
// activation kernels (HardSigmoid, LeakyTanh) are picked up by the nn
// package through its capability interfaces.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/clamp-ml/clamp/backend/cpu"
//	    "github.com/clamp-ml/clamp/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that never spawns goroutines.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
