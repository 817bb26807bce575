package nn

import (
	"github.com/clamp-ml/clamp/internal/tensor"
)

// Capability interfaces for fused activation kernels. Backends that
// implement them get a single-pass fast path; everything else falls back
// to a composition of core Backend ops with identical element semantics.

// HardSigmoidBackend is implemented by backends with a fused hard
// sigmoid kernel.
type HardSigmoidBackend interface {
	HardSigmoid(*tensor.RawTensor) *tensor.RawTensor
}

// LeakyTanhBackend is implemented by backends with a fused leaky hard
// tanh kernel.
type LeakyTanhBackend interface {
	LeakyTanh(x *tensor.RawTensor, alpha float32) *tensor.RawTensor
}

// HardTanhFunc clamps every element of x into [lower, upper].
//
// Identity inside the bounds, saturation outside. The bounds are not
// validated; callers must keep lower < upper. Clamp is a core Backend
// op, so there is no capability check here.
func HardTanhFunc[B tensor.Backend](x *tensor.Tensor[float32, B], lower, upper float32) *tensor.Tensor[float32, B] {
	return x.Clamp(lower, upper)
}

// HardSigmoidFunc computes clamp(x + 0.5, 0, 1) element-wise, a
// piecewise-linear stand-in for the logistic sigmoid: 0 at x <= -0.5,
// 1 at x >= 0.5, linear with slope 1 in between.
func HardSigmoidFunc[B tensor.Backend](x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := x.Backend()
	if fused, ok := any(backend).(HardSigmoidBackend); ok {
		return tensor.New[float32, B](fused.HardSigmoid(x.Raw()), backend)
	}
	return x.AddScalar(0.5).Clamp(0, 1)
}

// LeakyTanhFunc computes, element-wise,
//
//	clamp(x, -1, 1) + alpha*(max(x, 1) - 1) + alpha*(min(x, -1) + 1)
//
// which is the identity on [-1, 1] and continues with slope alpha past
// the saturation points, continuous at the knees. Alpha is not
// validated; negative or zero alpha is computed as written.
func LeakyTanhFunc[B tensor.Backend](x *tensor.Tensor[float32, B], alpha float32) *tensor.Tensor[float32, B] {
	backend := x.Backend()
	if fused, ok := any(backend).(LeakyTanhBackend); ok {
		return tensor.New[float32, B](fused.LeakyTanh(x.Raw(), alpha), backend)
	}

	// Portable fallback: the defining three-term sum over core ops.
	clamped := x.Clamp(-1, 1)
	upperLeak := x.MaxScalar(1).SubScalar(1).MulScalar(alpha)
	lowerLeak := x.MinScalar(-1).AddScalar(1).MulScalar(alpha)
	return clamped.Add(upperLeak).Add(lowerLeak)
}
