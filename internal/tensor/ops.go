package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// AddScalar adds a scalar value to each element of the tensor.
//
// Example:
//
//	y := x.AddScalar(0.5) // add 0.5 to all elements
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	result := t.backend.AddScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	result := t.backend.SubScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// MulScalar multiplies each element of the tensor by a scalar value.
//
// Example:
//
//	y := x.MulScalar(0.2) // scale all elements by 0.2
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// DivScalar divides each element of the tensor by a scalar value.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	result := t.backend.DivScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// MinScalar computes the element-wise minimum of the tensor and a scalar.
//
// Example:
//
//	y := x.MinScalar(-1) // min(x, -1) per element
func (t *Tensor[T, B]) MinScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MinScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// MaxScalar computes the element-wise maximum of the tensor and a scalar.
//
// Example:
//
//	y := x.MaxScalar(1) // max(x, 1) per element
func (t *Tensor[T, B]) MaxScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MaxScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// Clamp limits every element to the range [minVal, maxVal].
// The bounds are not validated; callers must keep minVal < maxVal.
//
// Example:
//
//	y := x.Clamp(-1, 1) // saturate to [-1, 1]
func (t *Tensor[T, B]) Clamp(minVal, maxVal T) *Tensor[T, B] {
	result := t.backend.Clamp(t.raw, minVal, maxVal)
	return New[T, B](result, t.backend)
}
