package tensor

import (
	"math"
	"testing"
)

func TestTensorAdd(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, backend)
	b, _ := FromSlice([]float32{10, 20, 30}, Shape{3}, backend)

	c := a.Add(b)

	expected := []float32{11, 22, 33}
	for i, want := range expected {
		assertEqualFloat32(t, want, c.Data()[i], "Add element")
	}
}

func TestTensorAddBroadcast(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{1, 2, 3}, Shape{3, 1}, backend)
	b, _ := FromSlice([]float32{10, 20}, Shape{2}, backend)

	c := a.Add(b)

	assertEqualShape(t, Shape{3, 2}, c.Shape(), "broadcast shape")
	expected := []float32{11, 21, 12, 22, 13, 23}
	for i, want := range expected {
		assertEqualFloat32(t, want, c.Data()[i], "broadcast element")
	}
}

func TestTensorSubMulDiv(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{4, 9, 16}, Shape{3}, backend)
	b, _ := FromSlice([]float32{2, 3, 4}, Shape{3}, backend)

	sub := a.Sub(b)
	mul := a.Mul(b)
	div := a.Div(b)

	for i, want := range []float32{2, 6, 12} {
		assertEqualFloat32(t, want, sub.Data()[i], "Sub element")
	}
	for i, want := range []float32{8, 27, 64} {
		assertEqualFloat32(t, want, mul.Data()[i], "Mul element")
	}
	for i, want := range []float32{2, 3, 4} {
		assertEqualFloat32(t, want, div.Data()[i], "Div element")
	}
}

func TestTensorScalarOps(t *testing.T) {
	backend := NewMockBackend()
	x, _ := FromSlice([]float32{-2, 0, 2}, Shape{3}, backend)

	add := x.AddScalar(0.5)
	for i, want := range []float32{-1.5, 0.5, 2.5} {
		assertEqualFloat32(t, want, add.Data()[i], "AddScalar element")
	}

	sub := x.SubScalar(1)
	for i, want := range []float32{-3, -1, 1} {
		assertEqualFloat32(t, want, sub.Data()[i], "SubScalar element")
	}

	mul := x.MulScalar(0.2)
	for i, want := range []float32{-0.4, 0, 0.4} {
		assertEqualFloat32(t, want, mul.Data()[i], "MulScalar element")
	}

	div := x.DivScalar(2)
	for i, want := range []float32{-1, 0, 1} {
		assertEqualFloat32(t, want, div.Data()[i], "DivScalar element")
	}
}

func TestTensorMinMaxScalar(t *testing.T) {
	backend := NewMockBackend()
	x, _ := FromSlice([]float32{-2, 0, 2}, Shape{3}, backend)

	lo := x.MinScalar(-1)
	for i, want := range []float32{-2, -1, -1} {
		assertEqualFloat32(t, want, lo.Data()[i], "MinScalar element")
	}

	hi := x.MaxScalar(1)
	for i, want := range []float32{1, 1, 2} {
		assertEqualFloat32(t, want, hi.Data()[i], "MaxScalar element")
	}
}

func TestTensorClamp(t *testing.T) {
	backend := NewMockBackend()
	x, _ := FromSlice([]float32{-3, -0.5, 0.5, 3}, Shape{4}, backend)

	y := x.Clamp(-1, 1)

	for i, want := range []float32{-1, -0.5, 0.5, 1} {
		assertEqualFloat32(t, want, y.Data()[i], "Clamp element")
	}

	// min(max(x, lo), hi) composed from the scalar ops must agree.
	composed := x.MaxScalar(-1).MinScalar(1)
	for i := range y.Data() {
		assertEqualFloat32(t, composed.Data()[i], y.Data()[i], "Clamp vs composition")
	}
}

func TestTensorOpsDoNotMutateInputs(t *testing.T) {
	backend := NewMockBackend()
	x, _ := FromSlice([]float32{-2, 2}, Shape{2}, backend)
	y, _ := FromSlice([]float32{1, 1}, Shape{2}, backend)

	_ = x.Add(y)
	_ = x.MulScalar(5)
	_ = x.Clamp(-1, 1)

	for i, want := range []float32{-2, 2} {
		assertEqualFloat32(t, want, x.Data()[i], "input element")
	}
}

func TestMockBackendNaNPropagation(t *testing.T) {
	backend := NewMockBackend()
	nan := float32(math.NaN())
	x, _ := FromSlice([]float32{nan, 1}, Shape{2}, backend)

	y := x.Clamp(-1, 1)
	if !math.IsNaN(float64(y.Data()[0])) {
		t.Errorf("Clamp(NaN) = %v, want NaN", y.Data()[0])
	}
	assertEqualFloat32(t, 1, y.Data()[1], "finite element")

	z := x.MinScalar(0)
	if !math.IsNaN(float64(z.Data()[0])) {
		t.Errorf("MinScalar(NaN) = %v, want NaN", z.Data()[0])
	}
}
