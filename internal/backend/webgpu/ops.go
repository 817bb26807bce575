//go:build windows

package webgpu

import (
	"fmt"

	"github.com/clamp-ml/clamp/internal/tensor"
)

// Add performs element-wise addition on GPU.
func (b *Backend) Add(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runBinaryOp(a, other, "add", addShader)
	if err != nil {
		panic("webgpu: Add: " + err.Error())
	}
	return result
}

// Sub performs element-wise subtraction on GPU.
func (b *Backend) Sub(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runBinaryOp(a, other, "sub", subShader)
	if err != nil {
		panic("webgpu: Sub: " + err.Error())
	}
	return result
}

// Mul performs element-wise multiplication on GPU.
func (b *Backend) Mul(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runBinaryOp(a, other, "mul", mulShader)
	if err != nil {
		panic("webgpu: Mul: " + err.Error())
	}
	return result
}

// Div performs element-wise division on GPU.
func (b *Backend) Div(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runBinaryOp(a, other, "div", divShader)
	if err != nil {
		panic("webgpu: Div: " + err.Error())
	}
	return result
}

// AddScalar adds a scalar value to each element on GPU.
func (b *Backend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "addScalar", addScalarShader, scalarToFloat32("AddScalar", scalar))
	if err != nil {
		panic("webgpu: AddScalar: " + err.Error())
	}
	return result
}

// SubScalar subtracts a scalar value from each element on GPU.
func (b *Backend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "subScalar", subScalarShader, scalarToFloat32("SubScalar", scalar))
	if err != nil {
		panic("webgpu: SubScalar: " + err.Error())
	}
	return result
}

// MulScalar multiplies each element by a scalar value on GPU.
func (b *Backend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "mulScalar", mulScalarShader, scalarToFloat32("MulScalar", scalar))
	if err != nil {
		panic("webgpu: MulScalar: " + err.Error())
	}
	return result
}

// DivScalar divides each element by a scalar value on GPU.
func (b *Backend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "divScalar", divScalarShader, scalarToFloat32("DivScalar", scalar))
	if err != nil {
		panic("webgpu: DivScalar: " + err.Error())
	}
	return result
}

// MinScalar computes min(x, scalar) per element on GPU.
func (b *Backend) MinScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "minScalar", minScalarShader, scalarToFloat32("MinScalar", scalar))
	if err != nil {
		panic("webgpu: MinScalar: " + err.Error())
	}
	return result
}

// MaxScalar computes max(x, scalar) per element on GPU.
func (b *Backend) MaxScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "maxScalar", maxScalarShader, scalarToFloat32("MaxScalar", scalar))
	if err != nil {
		panic("webgpu: MaxScalar: " + err.Error())
	}
	return result
}

// Clamp limits every element to [minVal, maxVal] on GPU.
// The bounds are not validated; callers must keep minVal < maxVal.
func (b *Backend) Clamp(x *tensor.RawTensor, minVal, maxVal any) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "clamp", clampShader,
		scalarToFloat32("Clamp", minVal), scalarToFloat32("Clamp", maxVal))
	if err != nil {
		panic("webgpu: Clamp: " + err.Error())
	}
	return result
}

// HardSigmoid computes clamp(x + 0.5, 0, 1) on GPU.
func (b *Backend) HardSigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "hardSigmoid", hardSigmoidShader)
	if err != nil {
		panic("webgpu: HardSigmoid: " + err.Error())
	}
	return result
}

// LeakyTanh computes the leaky hard tanh with slope alpha on GPU.
func (b *Backend) LeakyTanh(x *tensor.RawTensor, alpha float32) *tensor.RawTensor {
	result, err := b.runUnaryOp(x, "leakyTanh", leakyTanhShader, alpha)
	if err != nil {
		panic("webgpu: LeakyTanh: " + err.Error())
	}
	return result
}

// scalarToFloat32 converts a scalar of any supported numeric type to
// float32, the only dtype the GPU kernels handle.
func scalarToFloat32(name string, scalar any) float32 {
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
		panic(fmt.Sprintf("webgpu: %s: unsupported scalar type %T", name, scalar))
	}
}
