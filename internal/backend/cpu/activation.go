package cpu

import (
	"fmt"

	"github.com/clamp-ml/clamp/internal/parallel"
	"github.com/clamp-ml/clamp/internal/tensor"
)

// Fused single-pass kernels for the hard activation family. Clamp is
// part of the core Backend interface; HardSigmoid and LeakyTanh are
// discovered by the nn package through capability interfaces.
//
// All three are float-only: the activations are defined over the reals
// and integer tensors are rejected.

// Clamp limits every element to the range [minVal, maxVal].
// The bounds are not validated; callers must keep minVal < maxVal.
// NaN fails both comparisons and passes through unchanged.
func (cpu *CPUBackend) Clamp(x *tensor.RawTensor, minVal, maxVal any) *tensor.RawTensor {
	result := cpu.newResult("clamp", x)

	switch x.DType() {
	case tensor.Float32:
		clampKernel(result.AsFloat32(), x.AsFloat32(), toFloat32("clamp", minVal), toFloat32("clamp", maxVal), cpu.cfg)
	case tensor.Float64:
		clampKernel(result.AsFloat64(), x.AsFloat64(), toFloat64("clamp", minVal), toFloat64("clamp", maxVal), cpu.cfg)
	default:
		panic(fmt.Sprintf("clamp: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// HardSigmoid computes clamp(x + 0.5, 0, 1) in a single pass.
func (cpu *CPUBackend) HardSigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("hardSigmoid", x)

	switch x.DType() {
	case tensor.Float32:
		hardSigmoidKernel(result.AsFloat32(), x.AsFloat32(), cpu.cfg)
	case tensor.Float64:
		hardSigmoidKernel(result.AsFloat64(), x.AsFloat64(), cpu.cfg)
	default:
		panic(fmt.Sprintf("hardSigmoid: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// LeakyTanh computes clamp(x, -1, 1) + alpha*(max(x, 1) - 1) +
// alpha*(min(x, -1) + 1) in a single pass. The three terms are evaluated
// literally so the fused kernel is bit-identical to the composed formula
// on IEEE-754 specials (alpha=0 with an infinite input yields NaN from
// 0*Inf, not a saturated value).
func (cpu *CPUBackend) LeakyTanh(x *tensor.RawTensor, alpha float32) *tensor.RawTensor {
	result := cpu.newResult("leakyTanh", x)

	switch x.DType() {
	case tensor.Float32:
		leakyTanhKernel(result.AsFloat32(), x.AsFloat32(), alpha, cpu.cfg)
	case tensor.Float64:
		leakyTanhKernel(result.AsFloat64(), x.AsFloat64(), float64(alpha), cpu.cfg)
	default:
		panic(fmt.Sprintf("leakyTanh: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

type float interface {
	~float32 | ~float64
}

func clampKernel[T float](dst, src []T, lo, hi T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			v := src[i]
			if v < lo {
				v = lo
			}
			if v > hi {
				v = hi
			}
			dst[i] = v
		}
	}, cfg)
}

func hardSigmoidKernel[T float](dst, src []T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			v := src[i] + 0.5
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			dst[i] = v
		}
	}, cfg)
}

func leakyTanhKernel[T float](dst, src []T, alpha T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			v := src[i]
			c := v
			if c < -1 {
				c = -1
			}
			if c > 1 {
				c = 1
			}
			hi := v
			if hi < 1 {
				hi = 1
			}
			lo := v
			if lo > -1 {
				lo = -1
			}
			dst[i] = c + alpha*(hi-1) + alpha*(lo+1)
		}
	}, cfg)
}
