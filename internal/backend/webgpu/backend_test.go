//go:build windows

package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clamp-ml/clamp/internal/tensor"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	if !IsAvailable() {
		t.Skip("WebGPU not available on this system")
	}
	backend, err := New()
	require.NoError(t, err)
	t.Cleanup(backend.Release)
	return backend
}

func gpuFloat32(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float32, tensor.WebGPU)
	require.NoError(t, err)
	copy(r.AsFloat32(), data)
	return r
}

func TestGPUAdd(t *testing.T) {
	backend := newTestBackend(t)

	a := gpuFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{4})
	b := gpuFloat32(t, []float32{10, 20, 30, 40}, tensor.Shape{4})

	result := backend.Add(a, b)

	assert.Equal(t, []float32{11, 22, 33, 44}, result.AsFloat32())
}

func TestGPUClamp(t *testing.T) {
	backend := newTestBackend(t)

	x := gpuFloat32(t, []float32{-2, -1, -0.5, 0, 0.5, 1, 2}, tensor.Shape{7})

	result := backend.Clamp(x, float32(-1), float32(1))

	assert.Equal(t, []float32{-1, -1, -0.5, 0, 0.5, 1, 1}, result.AsFloat32())
}

func TestGPUHardSigmoid(t *testing.T) {
	backend := newTestBackend(t)

	x := gpuFloat32(t, []float32{-1, -0.5, 0, 0.5, 10}, tensor.Shape{5})

	result := backend.HardSigmoid(x)

	assert.Equal(t, []float32{0, 0, 0.5, 1, 1}, result.AsFloat32())
}

func TestGPULeakyTanh(t *testing.T) {
	backend := newTestBackend(t)

	x := gpuFloat32(t, []float32{-2, -1, 0, 1, 2}, tensor.Shape{5})

	result := backend.LeakyTanh(x, 0.2)

	expected := []float32{-1.2, -1, 0, 1, 1.2}
	for i, want := range expected {
		assert.InDelta(t, want, result.AsFloat32()[i], 1e-6)
	}
}

// TestGPUMatchesReference cross-checks the WGSL kernels against the
// portable reference kernels on a shared sweep.
func TestGPUMatchesReference(t *testing.T) {
	backend := newTestBackend(t)

	data := make([]float32, 1000)
	for i := range data {
		data[i] = float32(i)/100 - 5
	}
	x := gpuFloat32(t, data, tensor.Shape{len(data)})

	ref, err := tensor.HardSigmoid(x)
	require.NoError(t, err)
	assert.Equal(t, ref.AsFloat32(), backend.HardSigmoid(x).AsFloat32())

	ref, err = tensor.LeakyTanh(x, 0.2)
	require.NoError(t, err)
	assert.Equal(t, ref.AsFloat32(), backend.LeakyTanh(x, 0.2).AsFloat32())
}

func TestGPUScalarOps(t *testing.T) {
	backend := newTestBackend(t)

	x := gpuFloat32(t, []float32{1, 2, 3}, tensor.Shape{3})

	assert.Equal(t, []float32{1.5, 2.5, 3.5}, backend.AddScalar(x, float32(0.5)).AsFloat32())
	assert.Equal(t, []float32{2, 4, 6}, backend.MulScalar(x, float32(2)).AsFloat32())
	assert.Equal(t, []float32{1, 2, 2}, backend.MinScalar(x, float32(2)).AsFloat32())
	assert.Equal(t, []float32{2, 2, 3}, backend.MaxScalar(x, float32(2)).AsFloat32())
}
