package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// oneOf returns the value one for the element type.
func oneOf[T DType]() T {
	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case uint8:
		one = uint8(1)
	case bool:
		one = true
	default:
		panic("unsupported type")
	}
	return one.(T)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, oneOf[T](), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution (mean=0, std=1).
// Uses the Box-Muller transform. Only works with float types.
// Note: uses math/rand (not crypto/rand), appropriate for ML/statistical purposes.
//
// Example:
//
//	t := tensor.Randn[float32](Shape{100, 100}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := 0; i < len(dataF32); i += 2 {
			u1 := rand.Float64() //nolint:gosec // G404: statistical use, not security
			u2 := rand.Float64() //nolint:gosec // G404: statistical use, not security
			z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
			z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
			dataF32[i] = float32(z0)
			if i+1 < len(dataF32) {
				dataF32[i+1] = float32(z1)
			}
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := 0; i < len(dataF64); i += 2 {
			u1 := rand.Float64() //nolint:gosec // G404: statistical use, not security
			u2 := rand.Float64() //nolint:gosec // G404: statistical use, not security
			z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
			z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
			dataF64[i] = z0
			if i+1 < len(dataF64) {
				dataF64[i+1] = z1
			}
		}
	default:
		panic("Randn only supports float32 and float64 types")
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Only works with float types.
//
// Example:
//
//	t := tensor.Rand[float32](Shape{10, 10}, backend)
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := range dataF32 {
			dataF32[i] = float32(rand.Float64()) //nolint:gosec // G404: statistical use
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := range dataF64 {
			dataF64[i] = rand.Float64() //nolint:gosec // G404: statistical use
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive),
// stepping by one. end <= start yields an empty tensor.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	var n int
	switch s := any(start).(type) {
	case float32:
		n = int(any(end).(float32) - s)
	case float64:
		n = int(any(end).(float64) - s)
	case int32:
		n = int(any(end).(int32) - s)
	case int64:
		n = int(any(end).(int64) - s)
	case uint8:
		n = int(any(end).(uint8)) - int(s)
	default:
		panic("Arange not supported for this type")
	}
	if n < 0 {
		n = 0
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()

	switch s := any(start).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := range dataF32 {
			dataF32[i] = s + float32(i)
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := range dataF64 {
			dataF64[i] = s + float64(i)
		}
	case int32:
		dataI32 := any(data).([]int32)
		for i := range dataI32 {
			dataI32[i] = s + int32(i) //nolint:gosec // G115: i is within valid range
		}
	case int64:
		dataI64 := any(data).([]int64)
		for i := range dataI64 {
			dataI64[i] = s + int64(i)
		}
	case uint8:
		dataU8 := any(data).([]uint8)
		for i := range dataU8 {
			dataU8[i] = s + uint8(i) //nolint:gosec // G115: i is within valid range
		}
	}
	return t
}

// Linspace creates a 1D tensor with steps values evenly spaced over
// [start, end], both endpoints included. steps == 1 yields [start];
// steps <= 0 yields an empty tensor. Only works with float types.
//
// Example:
//
//	t := tensor.Linspace[float32](-1, 1, 5, backend) // [-1, -0.5, 0, 0.5, 1]
func Linspace[T DType, B Backend](start, end T, steps int, b B) *Tensor[T, B] {
	if steps < 0 {
		steps = 0
	}
	t := Zeros[T, B](Shape{steps}, b)
	data := t.Data()

	switch s := any(start).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		e := any(end).(float32)
		if steps == 1 {
			dataF32[0] = s
			break
		}
		step := (e - s) / float32(steps-1)
		for i := range dataF32 {
			dataF32[i] = s + float32(i)*step
		}
	case float64:
		dataF64 := any(data).([]float64)
		e := any(end).(float64)
		if steps == 1 {
			dataF64[0] = s
			break
		}
		step := (e - s) / float64(steps-1)
		for i := range dataF64 {
			dataF64[i] = s + float64(i)*step
		}
	default:
		panic("Linspace only supports float32 and float64 types")
	}
	return t
}
