package tensor

import (
	"math"
	"testing"
)

func TestZeros(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float32](Shape{2, 3}, backend)

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "Zeros shape")
	for i, v := range x.Data() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestOnes(t *testing.T) {
	backend := NewMockBackend()
	x := Ones[float64](Shape{4}, backend)

	for i, v := range x.Data() {
		if v != 1 {
			t.Errorf("element %d = %v, want 1", i, v)
		}
	}

	b := Ones[bool](Shape{2}, backend)
	for i, v := range b.Data() {
		if !v {
			t.Errorf("bool element %d = false, want true", i)
		}
	}
}

func TestFull(t *testing.T) {
	backend := NewMockBackend()
	x := Full[float32](Shape{3}, -2.5, backend)

	for _, v := range x.Data() {
		assertEqualFloat32(t, -2.5, v, "Full element")
	}
}

func TestArange(t *testing.T) {
	backend := NewMockBackend()
	x := Arange[int32](0, 5, backend)

	assertEqualShape(t, Shape{5}, x.Shape(), "Arange shape")
	for i, v := range x.Data() {
		if v != int32(i) {
			t.Errorf("element %d = %v, want %d", i, v, i)
		}
	}

	empty := Arange[float32](3, 3, backend)
	if empty.NumElements() != 0 {
		t.Errorf("Arange(3, 3) has %d elements, want 0", empty.NumElements())
	}
}

func TestLinspace(t *testing.T) {
	backend := NewMockBackend()
	x := Linspace[float32](-1, 1, 5, backend)

	expected := []float32{-1, -0.5, 0, 0.5, 1}
	assertEqualShape(t, Shape{5}, x.Shape(), "Linspace shape")
	for i, want := range expected {
		assertEqualFloat32(t, want, x.Data()[i], "Linspace element")
	}

	single := Linspace[float64](2, 5, 1, backend)
	if single.Data()[0] != 2 {
		t.Errorf("Linspace single = %v, want 2", single.Data()[0])
	}

	empty := Linspace[float32](0, 1, 0, backend)
	if empty.NumElements() != 0 {
		t.Errorf("Linspace with 0 steps has %d elements, want 0", empty.NumElements())
	}
}

func TestRandn(t *testing.T) {
	backend := NewMockBackend()
	x := Randn[float32](Shape{1000}, backend)

	// Loose sanity bound on the sample mean of N(0, 1).
	var sum float64
	for _, v := range x.Data() {
		sum += float64(v)
	}
	mean := sum / float64(x.NumElements())
	if math.Abs(mean) > 0.2 {
		t.Errorf("sample mean = %v, expected near 0", mean)
	}
}

func TestRand(t *testing.T) {
	backend := NewMockBackend()
	x := Rand[float64](Shape{100}, backend)

	for i, v := range x.Data() {
		if v < 0 || v >= 1 {
			t.Errorf("element %d = %v, outside [0, 1)", i, v)
		}
	}
}

func TestRandnPanicsOnInt(t *testing.T) {
	backend := NewMockBackend()

	defer func() {
		if recover() == nil {
			t.Error("Randn[int32] must panic")
		}
	}()
	Randn[int32](Shape{2}, backend)
}
