package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The surface is deliberately element-wise: binary arithmetic with
// broadcasting, scalar arithmetic, and Clamp, the primitive underneath
// the whole hard activation family. Fused activation kernels are
// optional per-backend extensions discovered via capability interfaces
// in the nn package.
//
// Backend methods panic on malformed inputs (mismatched dtypes,
// non-broadcastable shapes, unsupported dtypes). The error-returning
// reference kernels live in raw_ops.go.
type Backend interface {
	// Element-wise binary operations (with broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar any) *RawTensor // add scalar
	SubScalar(x *RawTensor, scalar any) *RawTensor // subtract scalar
	MulScalar(x *RawTensor, scalar any) *RawTensor // multiply by scalar
	DivScalar(x *RawTensor, scalar any) *RawTensor // divide by scalar
	MinScalar(x *RawTensor, scalar any) *RawTensor // element-wise min(x, scalar)
	MaxScalar(x *RawTensor, scalar any) *RawTensor // element-wise max(x, scalar)

	// Clamp limits every element to [minVal, maxVal].
	// Equivalent to MinScalar(MaxScalar(x, minVal), maxVal) in one pass.
	Clamp(x *RawTensor, minVal, maxVal any) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
