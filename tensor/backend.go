// Copyright 2025 The Clamp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/clamp-ml/clamp/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: pure Go with chunk-parallel kernels
//   - backend/webgpu: GPU compute via WebGPU (windows)
//
// The surface is deliberately element-wise: binary arithmetic with
// broadcasting, scalar arithmetic, and Clamp, the primitive underneath
// the hard activation family. Fused activation kernels are optional
// per-backend extensions discovered via capability interfaces in the
// nn package.
type Backend = tensor.Backend
