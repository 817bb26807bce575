package cpu

import (
	"fmt"

	"github.com/clamp-ml/clamp/internal/parallel"
	"github.com/clamp-ml/clamp/internal/tensor"
)

// Scalar operations - element-wise operations between a tensor and one
// scalar value. The scalar is converted to the tensor's dtype up front;
// lossy conversions (e.g. float into an int tensor) follow Go conversion
// rules.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar, addKernel)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar, subKernel)
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar, mulKernel)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar, divKernel)
}

// MinScalar computes min(x, scalar) per element.
// NaN elements compare false and pass through unchanged.
func (cpu *CPUBackend) MinScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("minScalar", x)

	switch x.DType() {
	case tensor.Float32:
		minScalarKernel(result.AsFloat32(), x.AsFloat32(), toFloat32("minScalar", scalar), cpu.cfg)
	case tensor.Float64:
		minScalarKernel(result.AsFloat64(), x.AsFloat64(), toFloat64("minScalar", scalar), cpu.cfg)
	case tensor.Int32:
		minScalarKernel(result.AsInt32(), x.AsInt32(), toInt32("minScalar", scalar), cpu.cfg)
	case tensor.Int64:
		minScalarKernel(result.AsInt64(), x.AsInt64(), toInt64("minScalar", scalar), cpu.cfg)
	default:
		panic(fmt.Sprintf("minScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// MaxScalar computes max(x, scalar) per element.
// NaN elements compare false and pass through unchanged.
func (cpu *CPUBackend) MaxScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("maxScalar", x)

	switch x.DType() {
	case tensor.Float32:
		maxScalarKernel(result.AsFloat32(), x.AsFloat32(), toFloat32("maxScalar", scalar), cpu.cfg)
	case tensor.Float64:
		maxScalarKernel(result.AsFloat64(), x.AsFloat64(), toFloat64("maxScalar", scalar), cpu.cfg)
	case tensor.Int32:
		maxScalarKernel(result.AsInt32(), x.AsInt32(), toInt32("maxScalar", scalar), cpu.cfg)
	case tensor.Int64:
		maxScalarKernel(result.AsInt64(), x.AsInt64(), toInt64("maxScalar", scalar), cpu.cfg)
	default:
		panic(fmt.Sprintf("maxScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

func (cpu *CPUBackend) scalarOp(name string, x *tensor.RawTensor, scalar any, k kernel) *tensor.RawTensor {
	result := cpu.newResult(name, x)

	switch x.DType() {
	case tensor.Float32:
		scalarKernel(result.AsFloat32(), x.AsFloat32(), toFloat32(name, scalar), k, cpu.cfg)
	case tensor.Float64:
		scalarKernel(result.AsFloat64(), x.AsFloat64(), toFloat64(name, scalar), k, cpu.cfg)
	case tensor.Int32:
		scalarKernel(result.AsInt32(), x.AsInt32(), toInt32(name, scalar), k, cpu.cfg)
	case tensor.Int64:
		scalarKernel(result.AsInt64(), x.AsInt64(), toInt64(name, scalar), k, cpu.cfg)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

func (cpu *CPUBackend) newResult(name string, x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}
	return result
}

func scalarKernel[T number](dst, src []T, s T, k kernel, cfg parallel.Config) {
	switch k {
	case addKernel:
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = src[i] + s
			}
		}, cfg)
	case subKernel:
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = src[i] - s
			}
		}, cfg)
	case mulKernel:
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = src[i] * s
			}
		}, cfg)
	case divKernel:
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = src[i] / s
			}
		}, cfg)
	}
}

func minScalarKernel[T number](dst, src []T, s T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			v := src[i]
			if v > s {
				v = s
			}
			dst[i] = v
		}
	}, cfg)
}

func maxScalarKernel[T number](dst, src []T, s T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			v := src[i]
			if v < s {
				v = s
			}
			dst[i] = v
		}
	}, cfg)
}

// Scalar conversion helpers. Accept any Go numeric type and convert to
// the tensor dtype.

func toFloat32(name string, scalar any) float32 {
	switch s := scalar.(type) {
	case float32:
		return s
	case float64:
		return float32(s)
	case int:
		return float32(s)
	case int32:
		return float32(s)
	case int64:
		return float32(s)
	case uint8:
		return float32(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", name, scalar))
	}
}

func toFloat64(name string, scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	case int32:
		return float64(s)
	case int64:
		return float64(s)
	case uint8:
		return float64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", name, scalar))
	}
}

func toInt32(name string, scalar any) int32 {
	switch s := scalar.(type) {
	case float32:
		return int32(s)
	case float64:
		return int32(s)
	case int:
		return int32(s)
	case int32:
		return s
	case int64:
		return int32(s)
	case uint8:
		return int32(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", name, scalar))
	}
}

func toInt64(name string, scalar any) int64 {
	switch s := scalar.(type) {
	case float32:
		return int64(s)
	case float64:
		return int64(s)
	case int:
		return int64(s)
	case int32:
		return int64(s)
	case int64:
		return s
	case uint8:
		return int64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", name, scalar))
	}
}
