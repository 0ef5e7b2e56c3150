package tsne

import (
	"fmt"

	"github.com/born-ml/bhtsne/internal/parallel"
	"github.com/born-ml/bhtsne/internal/sptree"
	"github.com/born-ml/bhtsne/internal/tensor"
)

// Kernels runs the t-SNE kernels on RawTensor buffers, selecting the generic
// instantiation from each buffer's runtime DataType. Index buffers (row
// pointers, columns, counts) must be Int32 or Int64.
type Kernels struct {
	cfg parallel.Config
}

// New creates kernels that parallelize with cfg.
func New(cfg parallel.Config) *Kernels {
	return &Kernels{cfg: cfg}
}

// Name returns the kernel set name.
func (k *Kernels) Name() string {
	return "CPU"
}

// Config returns the parallel configuration.
func (k *Kernels) Config() parallel.Config {
	return k.cfg
}

type rawIndex interface {
	~int32 | ~int64
}

// CountDegrees runs CountDegrees on index buffers and returns the degree total.
func (k *Kernels) CountDegrees(rowP, colP *tensor.RawTensor, n int, counts *tensor.RawTensor) (int, error) {
	dt, err := sameIndexType("count degrees", rowP, colP, counts)
	if err != nil {
		return 0, err
	}

	switch dt {
	case tensor.Int32:
		return CountDegrees(rowP.AsInt32(), colP.AsInt32(), n, counts.AsInt32())
	default:
		return CountDegrees(rowP.AsInt64(), colP.AsInt64(), n, counts.AsInt64())
	}
}

// Symmetrize runs Symmetrize on buffers. The degree total is reduced from
// counts and checked against the output capacity before dispatch.
func (k *Kernels) Symmetrize(
	rowP, colP, valP *tensor.RawTensor, n int, counts *tensor.RawTensor,
	outRows, outCols, outVals *tensor.RawTensor,
) error {
	dt, err := sameIndexType("symmetrize", rowP, colP, counts, outRows, outCols)
	if err != nil {
		return err
	}
	if valP.DType() != outVals.DType() {
		return fmt.Errorf("symmetrize: values are %s, output values %s: %w", valP.DType(), outVals.DType(), ErrUnsupportedDType)
	}
	if total := int(counts.Sum()); outCols.NumElements() < total || outVals.NumElements() < total {
		return fmt.Errorf("symmetrize: output holds %d entries, degree total is %d: %w",
			min(outCols.NumElements(), outVals.NumElements()), total, ErrPrecondition)
	}

	switch dt {
	case tensor.Int32:
		return symmetrizeRaw[int32](rowP, colP, valP, n, counts, outRows, outCols, outVals)
	default:
		return symmetrizeRaw[int64](rowP, colP, valP, n, counts, outRows, outCols, outVals)
	}
}

func symmetrizeRaw[I rawIndex](
	rowP, colP, valP *tensor.RawTensor, n int, counts *tensor.RawTensor,
	outRows, outCols, outVals *tensor.RawTensor,
) error {
	rows, cols, cnt := tensor.View[I](rowP), tensor.View[I](colP), tensor.View[I](counts)
	oRows, oCols := tensor.View[I](outRows), tensor.View[I](outCols)

	switch valP.DType() {
	case tensor.Float32:
		return Symmetrize(rows, cols, valP.AsFloat32(), n, cnt, oRows, oCols, outVals.AsFloat32())
	case tensor.Float64:
		return Symmetrize(rows, cols, valP.AsFloat64(), n, cnt, oRows, oCols, outVals.AsFloat64())
	case tensor.Int32:
		return Symmetrize(rows, cols, valP.AsInt32(), n, cnt, oRows, oCols, outVals.AsInt32())
	case tensor.Int64:
		return Symmetrize(rows, cols, valP.AsInt64(), n, cnt, oRows, oCols, outVals.AsInt64())
	default:
		return fmt.Errorf("symmetrize: values dtype %s: %w", valP.DType(), ErrUnsupportedDType)
	}
}

// EdgeForces runs EdgeForces. embedding and forces must be 2-D buffers of
// the same shape whose dtype matches valP.
func (k *Kernels) EdgeForces(rowP, colP, valP *tensor.RawTensor, n int, embedding, forces *tensor.RawTensor) error {
	dt, err := sameIndexType("edge forces", rowP, colP)
	if err != nil {
		return err
	}
	if len(embedding.Shape()) != 2 || !embedding.Shape().Equal(forces.Shape()) {
		return fmt.Errorf("edge forces: embedding %v, forces %v: %w", embedding.Shape(), forces.Shape(), ErrShapeMismatch)
	}
	if embedding.Rows() < n {
		return fmt.Errorf("edge forces: embedding has %d rows for %d vertices: %w", embedding.Rows(), n, ErrShapeMismatch)
	}
	if valP.DType() != embedding.DType() || forces.DType() != embedding.DType() {
		return fmt.Errorf("edge forces: values %s, embedding %s, forces %s: %w",
			valP.DType(), embedding.DType(), forces.DType(), ErrUnsupportedDType)
	}

	switch dt {
	case tensor.Int32:
		return edgeForcesRaw[int32](rowP, colP, valP, n, embedding, forces, k.cfg)
	default:
		return edgeForcesRaw[int64](rowP, colP, valP, n, embedding, forces, k.cfg)
	}
}

func edgeForcesRaw[I rawIndex](
	rowP, colP, valP *tensor.RawTensor, n int, embedding, forces *tensor.RawTensor, cfg parallel.Config,
) error {
	rows, cols := tensor.View[I](rowP), tensor.View[I](colP)
	d := embedding.Cols()

	switch embedding.DType() {
	case tensor.Float32:
		return EdgeForces(rows, cols, valP.AsFloat32(), n, d, embedding.AsFloat32(), forces.AsFloat32(), cfg)
	case tensor.Float64:
		return EdgeForces(rows, cols, valP.AsFloat64(), n, d, embedding.AsFloat64(), forces.AsFloat64(), cfg)
	default:
		return fmt.Errorf("edge forces: dtype %s: %w", embedding.DType(), ErrUnsupportedDType)
	}
}

// UpdateGains runs UpdateGains on four float buffers of identical shape and dtype.
// out may be gains itself.
func (k *Kernels) UpdateGains(gains, grads, steps, out *tensor.RawTensor) error {
	for _, r := range []*tensor.RawTensor{grads, steps, out} {
		if !r.Shape().Equal(gains.Shape()) {
			return fmt.Errorf("update gains: shape %v vs gains %v: %w", r.Shape(), gains.Shape(), ErrShapeMismatch)
		}
		if r.DType() != gains.DType() {
			return fmt.Errorf("update gains: dtype %s vs gains %s: %w", r.DType(), gains.DType(), ErrUnsupportedDType)
		}
	}

	switch gains.DType() {
	case tensor.Float32:
		return UpdateGains(gains.AsFloat32(), grads.AsFloat32(), steps.AsFloat32(), out.AsFloat32(), k.cfg)
	case tensor.Float64:
		return UpdateGains(gains.AsFloat64(), grads.AsFloat64(), steps.AsFloat64(), out.AsFloat64(), k.cfg)
	default:
		return fmt.Errorf("update gains: dtype %s: %w", gains.DType(), ErrUnsupportedDType)
	}
}

// CellContains tests the first d coordinates of point against the cell
// (center, halfWidth). Elements of any dtype are compared as float64.
func (k *Kernels) CellContains(center, halfWidth, point *tensor.RawTensor, d int) (bool, error) {
	for _, r := range []*tensor.RawTensor{center, halfWidth, point} {
		if r.NumElements() < d {
			return false, fmt.Errorf("cell contains: buffer of %d elements for %d dims: %w", r.NumElements(), d, ErrShapeMismatch)
		}
	}

	c, h, p := make([]float64, d), make([]float64, d), make([]float64, d)
	for i := 0; i < d; i++ {
		c[i], h[i], p[i] = center.AtFlat(i), halfWidth.AtFlat(i), point.AtFlat(i)
	}
	return sptree.Contains(c, h, p, d), nil
}

// sameIndexType checks that all buffers share one index dtype.
func sameIndexType(op string, bufs ...*tensor.RawTensor) (tensor.DataType, error) {
	dt := bufs[0].DType()
	if dt != tensor.Int32 && dt != tensor.Int64 {
		return dt, fmt.Errorf("%s: index dtype %s: %w", op, dt, ErrUnsupportedDType)
	}
	for _, b := range bufs[1:] {
		if b.DType() != dt {
			return dt, fmt.Errorf("%s: index dtypes %s and %s differ: %w", op, dt, b.DType(), ErrUnsupportedDType)
		}
	}
	return dt, nil
}
