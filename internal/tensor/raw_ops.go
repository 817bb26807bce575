// Raw reference kernels for the clamp activation family. The Float32 and
// Float64 paths are intentionally similar concrete loops: no dispatch in
// the hot path, and exact IEEE-754 behavior is easy to audit per type.

package tensor

import "fmt"

// Clamp limits every element to the range [minVal, maxVal].
//
// The comparison chain (v < min → min, then v > max → max) is equivalent
// to min(max(v, minVal), maxVal): NaN fails both comparisons and passes
// through unchanged, -Inf saturates to minVal, +Inf to maxVal.
// The bounds are not validated; callers must keep minVal < maxVal.
func Clamp(x *RawTensor, minVal, maxVal float32) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Clamp: input tensor is nil")
	}
	result, err := NewRaw(x.shape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Clamp: %w", err)
	}

	switch x.dtype {
	case Float32:
		in := x.AsFloat32()
		out := result.AsFloat32()
		for i := range in {
			v := in[i]
			if v < minVal {
				v = minVal
			}
			if v > maxVal {
				v = maxVal
			}
			out[i] = v
		}
	case Float64:
		in := x.AsFloat64()
		out := result.AsFloat64()
		min64, max64 := float64(minVal), float64(maxVal)
		for i := range in {
			v := in[i]
			if v < min64 {
				v = min64
			}
			if v > max64 {
				v = max64
			}
			out[i] = v
		}
	default:
		return nil, fmt.Errorf("Clamp: unsupported dtype %v", x.dtype)
	}
	return result, nil
}

// HardSigmoid applies the hard sigmoid element-wise: clamp(x + 0.5, 0, 1).
// A piecewise-linear stand-in for the logistic sigmoid: 0 below -0.5,
// 1 above 0.5, linear with slope 1 in between.
func HardSigmoid(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("HardSigmoid: input tensor is nil")
	}
	result, err := NewRaw(x.shape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("HardSigmoid: %w", err)
	}

	switch x.dtype {
	case Float32:
		in := x.AsFloat32()
		out := result.AsFloat32()
		for i := range in {
			v := in[i] + 0.5
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			out[i] = v
		}
	case Float64:
		in := x.AsFloat64()
		out := result.AsFloat64()
		for i := range in {
			v := in[i] + 0.5
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			out[i] = v
		}
	default:
		return nil, fmt.Errorf("HardSigmoid: unsupported dtype %v", x.dtype)
	}
	return result, nil
}

// LeakyTanh applies the leaky hard tanh element-wise:
//
//	clamp(x, -1, 1) + alpha*(max(x, 1) - 1) + alpha*(min(x, -1) + 1)
//
// Identity on [-1, 1], slope alpha outside, continuous at the knees.
// The three terms are evaluated literally so IEEE-754 corner cases come
// out of the arithmetic itself (alpha=0 with an infinite input yields
// NaN from 0*Inf). Alpha is not validated.
func LeakyTanh(x *RawTensor, alpha float32) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("LeakyTanh: input tensor is nil")
	}
	result, err := NewRaw(x.shape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("LeakyTanh: %w", err)
	}

	switch x.dtype {
	case Float32:
		in := x.AsFloat32()
		out := result.AsFloat32()
		for i := range in {
			v := in[i]
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
			out[i] = c + alpha*(hi-1) + alpha*(lo+1)
		}
	case Float64:
		in := x.AsFloat64()
		out := result.AsFloat64()
		alpha64 := float64(alpha)
		for i := range in {
			v := in[i]
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
			out[i] = c + alpha64*(hi-1) + alpha64*(lo+1)
		}
	default:
		return nil, fmt.Errorf("LeakyTanh: unsupported dtype %v", x.dtype)
	}
	return result, nil
}
