package cpu

import (
	"fmt"

	"github.com/clamp-ml/clamp/internal/parallel"
	"github.com/clamp-ml/clamp/internal/tensor"
)

// number covers the dtypes the arithmetic kernels operate on.
// Uint8 and Bool tensors are rejected at dispatch time.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// kernel selects one of the four arithmetic operations.
type kernel int

const (
	addKernel kernel = iota
	subKernel
	mulKernel
	divKernel
)

// binaryVectorized computes result = a op b over flat same-shape buffers.
func (cpu *CPUBackend) binaryVectorized(name string, result, a, b *tensor.RawTensor, k kernel) {
	switch a.DType() {
	case tensor.Float32:
		vectorized(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), k, cpu.cfg)
	case tensor.Float64:
		vectorized(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), k, cpu.cfg)
	case tensor.Int32:
		vectorized(result.AsInt32(), a.AsInt32(), b.AsInt32(), k, cpu.cfg)
	case tensor.Int64:
		vectorized(result.AsInt64(), a.AsInt64(), b.AsInt64(), k, cpu.cfg)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}
}

// binaryBroadcast computes result = a op b where a and b broadcast to
// outShape. Broadcast dimensions read with stride 0.
func (cpu *CPUBackend) binaryBroadcast(name string, result, a, b *tensor.RawTensor, outShape tensor.Shape, k kernel) {
	switch a.DType() {
	case tensor.Float32:
		broadcasted(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, k, cpu.cfg)
	case tensor.Float64:
		broadcasted(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, k, cpu.cfg)
	case tensor.Int32:
		broadcasted(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, k, cpu.cfg)
	case tensor.Int64:
		broadcasted(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, k, cpu.cfg)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}
}

// vectorized runs the flat fast path. Each kernel gets its own loop so
// the operation compiles to a direct instruction instead of an indirect
// call per element.
func vectorized[T number](dst, a, b []T, k kernel, cfg parallel.Config) {
	switch k {
	case addKernel:
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = a[i] + b[i]
			}
		}, cfg)
	case subKernel:
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = a[i] - b[i]
			}
		}, cfg)
	case mulKernel:
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = a[i] * b[i]
			}
		}, cfg)
	case divKernel:
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = a[i] / b[i]
			}
		}, cfg)
	}
}

// broadcasted runs the general path with index remapping per element.
func broadcasted[T number](dst, a, b []T, aShape, bShape, outShape tensor.Shape, k kernel, cfg parallel.Config) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	var op func(x, y T) T
	switch k {
	case addKernel:
		op = func(x, y T) T { return x + y }
	case subKernel:
		op = func(x, y T) T { return x - y }
	case mulKernel:
		op = func(x, y T) T { return x * y }
	case divKernel:
		op = func(x, y T) T { return x / y }
	}

	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			ai := sourceIndex(i, outStrides, aStrides)
			bi := sourceIndex(i, outStrides, bStrides)
			dst[i] = op(a[ai], b[bi])
		}
	}, cfg)
}
