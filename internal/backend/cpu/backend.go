// Package cpu implements the pure-Go CPU backend for the Clamp library.
package cpu

import (
	"fmt"

	"github.com/clamp-ml/clamp/internal/parallel"
	"github.com/clamp-ml/clamp/internal/tensor"
)

// CPUBackend implements tensor operations on the CPU. Element-wise
// kernels run chunk-parallel for large tensors and sequentially below
// the parallel threshold.
type CPUBackend struct {
	device tensor.Device
	cfg    parallel.Config
}

// New creates a new CPU backend with the default parallel configuration.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		cfg:    parallel.DefaultConfig(),
	}
}

// NewSequential creates a CPU backend that never spawns goroutines.
// Useful for deterministic profiling and as a baseline in benchmarks.
func NewSequential() *CPUBackend {
	b := New()
	b.cfg.Enabled = false
	return b
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "cpu"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, addKernel)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b, subKernel)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, mulKernel)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b, divKernel)
}

// binaryOp allocates the broadcasted result tensor and dispatches to the
// dtype-specific kernel. Same-shape inputs take the flat fast path.
func (cpu *CPUBackend) binaryOp(name string, a, b *tensor.RawTensor, k kernel) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		cpu.binaryVectorized(name, result, a, b, k)
	} else {
		cpu.binaryBroadcast(name, result, a, b, outShape, k)
	}

	return result
}
