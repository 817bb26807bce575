//go:build windows

// Copyright 2025 The Clamp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated tensor
// operations.
//
// Example:
//
//	import (
//	    "github.com/clamp-ml/clamp/backend/webgpu"
//	    "github.com/clamp-ml/clamp/tensor"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    x := tensor.Randn[float32](tensor.Shape{1024, 1024}, gpu)
//	    y := x.Clamp(-1, 1)
//	}
package webgpu

import (
	internalwebgpu "github.com/clamp-ml/clamp/internal/backend/webgpu"
	"github.com/clamp-ml/clamp/tensor"
)

// Backend represents the WebGPU backend implementation for
// GPU-accelerated tensor operations.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// Initializes the WebGPU device and returns a backend ready for tensor
// operations. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    backend, _ = webgpu.New()
//	} else {
//	    backend = cpu.New()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
