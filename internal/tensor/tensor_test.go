package tensor

import (
	"fmt"
	"math"
	"testing"
)

// Test helpers

func assertEqualFloat32(t *testing.T, expected, actual float32, msg string) {
	t.Helper()
	if math.Abs(float64(expected-actual)) > 1e-6 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Uint8, "uint8"},
		{Bool, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestDataTypeIsFloat(t *testing.T) {
	if !Float32.IsFloat() || !Float64.IsFloat() {
		t.Error("float types must report IsFloat() = true")
	}
	for _, dt := range []DataType{Int32, Int64, Uint8, Bool} {
		if dt.IsFloat() {
			t.Errorf("%s.IsFloat() = true, want false", dt)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(int32(0)); dt != Int32 {
		t.Errorf("inferDataType(int32) = %v, want Int32", dt)
	}
	if dt := inferDataType(int64(0)); dt != Int64 {
		t.Errorf("inferDataType(int64) = %v, want Int64", dt)
	}
	if dt := inferDataType(uint8(0)); dt != Uint8 {
		t.Errorf("inferDataType(uint8) = %v, want Uint8", dt)
	}
	if dt := inferDataType(false); dt != Bool {
		t.Errorf("inferDataType(bool) = %v, want Bool", dt)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},        // Scalar
		{Shape{5}, 5},       // 1D
		{Shape{2, 3}, 6},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{0}, 0},       // Empty
		{Shape{3, 0, 2}, 0}, // Empty with nonzero dims around
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	valid := []Shape{{}, {1}, {0}, {2, 3}, {4, 0, 5}}
	for _, s := range valid {
		if err := s.Validate(); err != nil {
			t.Errorf("%v.Validate() = %v, want nil", s, err)
		}
	}

	invalid := []Shape{{-1}, {2, -3}, {-1, -1}}
	for _, s := range invalid {
		if err := s.Validate(); err == nil {
			t.Errorf("%v.Validate() = nil, want error", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("different shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("different ranks reported equal")
	}
	if !(Shape{}).Equal(Shape{}) {
		t.Error("scalar shapes reported unequal")
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3, 4}
	c := s.Clone()
	assertEqualShape(t, s, c, "clone")

	c[0] = 99
	if s[0] != 2 {
		t.Error("modifying clone changed the original shape")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.expected)
				break
			}
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		expected  Shape
		broadcast bool
	}{
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}, true},
		{Shape{}, Shape{2, 3}, Shape{2, 3}, true},
	}

	for _, tt := range tests {
		got, bc, err := BroadcastShapes(tt.a, tt.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) error: %v", tt.a, tt.b, err)
			continue
		}
		assertEqualShape(t, tt.expected, got, fmt.Sprintf("BroadcastShapes(%v, %v)", tt.a, tt.b))
		if bc != tt.broadcast {
			t.Errorf("BroadcastShapes(%v, %v) broadcast = %v, want %v", tt.a, tt.b, bc, tt.broadcast)
		}
	}

	if _, _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5}); err == nil {
		t.Error("incompatible shapes must not broadcast")
	}
}

// Tensor Tests

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "FromSlice shape")
	if x.DType() != Float32 {
		t.Errorf("dtype = %v, want Float32", x.DType())
	}
	assertEqualFloat32(t, 6, x.At(1, 2), "At(1, 2)")

	// The tensor owns a copy of the data.
	data[0] = 99
	assertEqualFloat32(t, 1, x.At(0, 0), "tensor shares caller slice")
}

func TestFromSliceSizeMismatch(t *testing.T) {
	backend := NewMockBackend()
	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}, backend); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestScalarTensor(t *testing.T) {
	backend := NewMockBackend()

	x := Scalar[float32](2.5, backend)
	assertEqualShape(t, Shape{}, x.Shape(), "Scalar shape")
	if x.NumElements() != 1 {
		t.Errorf("NumElements = %d, want 1", x.NumElements())
	}
	assertEqualFloat32(t, 2.5, x.Item(), "Item()")
}

func TestItemPanicsOnNonScalar(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float32](Shape{2}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Item() on non-scalar must panic")
		}
	}()
	x.Item()
}

func TestAtSet(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float32](Shape{2, 3}, backend)

	x.Set(7, 1, 2)
	assertEqualFloat32(t, 7, x.At(1, 2), "Set/At roundtrip")
	assertEqualFloat32(t, 0, x.At(0, 0), "untouched element")
}

func TestAtOutOfBounds(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float32](Shape{2, 3}, backend)

	defer func() {
		if recover() == nil {
			t.Error("At() out of bounds must panic")
		}
	}()
	x.At(2, 0)
}

func TestTensorClone(t *testing.T) {
	backend := NewMockBackend()
	x, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, backend)

	y := x.Clone()
	y.Set(99, 0)

	assertEqualFloat32(t, 1, x.At(0), "clone must not share memory")
	assertEqualFloat32(t, 99, y.At(0), "clone value")
}

func TestTensorString(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float32](Shape{2, 3}, backend)

	want := "Tensor[float32][2 3] on CPU"
	if got := x.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestZeroElementTensor(t *testing.T) {
	backend := NewMockBackend()

	x := Zeros[float32](Shape{0}, backend)
	if x.NumElements() != 0 {
		t.Errorf("NumElements = %d, want 0", x.NumElements())
	}
	if data := x.Data(); len(data) != 0 {
		t.Errorf("Data() length = %d, want 0", len(data))
	}

	// Element-wise ops preserve the empty shape.
	y := x.AddScalar(1)
	assertEqualShape(t, Shape{0}, y.Shape(), "empty AddScalar shape")
}
