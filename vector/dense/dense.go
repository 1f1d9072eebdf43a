package dense

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/mreduce/multivec/vector"
)

// Dense is a dense float64 vector backed by gonum's mat.VecDense.
//
// Binary operations fast-path other *Dense operands through gonum and fall
// back to the vector.Vector accessors for foreign implementations. Length
// mismatches panic with mat.ErrShape, matching gonum's convention.
type Dense struct {
	v *mat.VecDense
}

// NewDense returns a zeroed vector of length n.
// It panics if n <= 0 (gonum does not model zero-length vectors).
func NewDense(n int) *Dense {
	return &Dense{v: mat.NewVecDense(n, nil)}
}

// FromSlice returns a vector backed by a copy of data.
func FromSlice(data []float64) *Dense {
	return &Dense{v: mat.NewVecDense(len(data), slices.Clone(data))}
}

// FromVecDense wraps v without copying. The caller and the returned Dense
// share storage.
func FromVecDense(v *mat.VecDense) *Dense {
	return &Dense{v: v}
}

// RawVecDense returns the backing gonum vector. Mutations through the
// returned value are visible to the receiver.
func (d *Dense) RawVecDense() *mat.VecDense { return d.v }

// Len returns the number of entries.
func (d *Dense) Len() int { return d.v.Len() }

// AtVec returns the i-th entry.
func (d *Dense) AtVec(i int) float64 { return d.v.AtVec(i) }

// SetVec sets the i-th entry to v.
func (d *Dense) SetVec(i int, v float64) { d.v.SetVec(i, v) }

// Copy returns a deep copy sharing no storage with the receiver.
func (d *Dense) Copy() vector.Vector {
	out := mat.NewVecDense(d.v.Len(), nil)
	out.CopyVec(d.v)
	return &Dense{v: out}
}

// Zero sets every entry to zero.
func (d *Dense) Zero() { d.v.Zero() }

// Scale multiplies every entry by a.
func (d *Dense) Scale(a float64) { d.v.ScaleVec(a, d.v) }

// Axpy adds a*x to the receiver in place.
func (d *Dense) Axpy(a float64, x vector.Vector) {
	if o, ok := x.(*Dense); ok {
		d.v.AddScaledVec(d.v, a, o.v)
		return
	}
	n := d.v.Len()
	if x.Len() != n {
		panic(mat.ErrShape)
	}
	for i := 0; i < n; i++ {
		d.v.SetVec(i, d.v.AtVec(i)+a*x.AtVec(i))
	}
}

// Inner returns the inner product of the receiver with x.
func (d *Dense) Inner(x vector.Vector) float64 {
	if o, ok := x.(*Dense); ok {
		return mat.Dot(d.v, o.v)
	}
	n := d.v.Len()
	if x.Len() != n {
		panic(mat.ErrShape)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += d.v.AtVec(i) * x.AtVec(i)
	}
	return sum
}

// Norm returns the requested norm of the receiver. It panics with
// vector.ErrUnknownNorm for unsupported kinds.
func (d *Dense) Norm(kind vector.Norm) float64 {
	if !kind.Valid() {
		panic(vector.ErrUnknownNorm{Kind: kind})
	}
	raw := d.v.RawVector()
	data := raw.Data
	if raw.Inc != 1 {
		// Strided views (e.g. from SliceVec) are compacted before the
		// flat-slice norm kernels run.
		data = make([]float64, raw.N)
		for i := range data {
			data[i] = raw.Data[i*raw.Inc]
		}
	}
	switch kind {
	case vector.NormL1:
		return floats.Norm(data, 1)
	case vector.NormL2:
		return floats.Norm(data, 2)
	default: // NormLinf, the only remaining valid kind
		return floats.Norm(data, math.Inf(1))
	}
}
