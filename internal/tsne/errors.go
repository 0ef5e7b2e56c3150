package tsne

import "errors"

// Sentinel errors returned by the kernels. Call sites wrap them with
// operation context; callers match with errors.Is.
var (
	// ErrPrecondition indicates caller-supplied buffers or counts that are
	// inconsistent with the graph, e.g. an output buffer smaller than the
	// degree total or a column index outside [0, N).
	ErrPrecondition = errors.New("tsne: precondition violated")

	// ErrShapeMismatch indicates dense operands with incompatible lengths,
	// e.g. embedding and force matrices of different sizes.
	ErrShapeMismatch = errors.New("tsne: shape mismatch")

	// ErrUnsupportedDType indicates a buffer element type with no kernel
	// instantiation.
	ErrUnsupportedDType = errors.New("tsne: unsupported data type")
)
