package multivec

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/mreduce/multivec/vector"
)

// Reduce accumulates the linear combination of the elements into v:
//
//	v += sum_i alpha[i] * m[i]
//
// alpha must have length Len(); Reduce panics with ErrCountMismatch
// otherwise.
func (m *MultiVector) Reduce(v vector.Vector, alpha []float64) {
	m.checkCount(len(alpha))
	start := time.Now()
	for i, vi := range m.mv {
		v.Axpy(alpha[i], vi)
	}
	m.metrics().RecordUpdate(len(m.mv), time.Since(start))
}

// Axpy adds a*y to every element: m[i] += a*y for all i.
func (m *MultiVector) Axpy(a float64, y vector.Vector) {
	start := time.Now()
	for _, vi := range m.mv {
		vi.Axpy(a, y)
	}
	m.metrics().RecordUpdate(len(m.mv), time.Since(start))
}

// AxpyEach adds a[i]*y[i] to element i: m[i] += a[i]*y[i] for all i.
// Both len(a) and y.Len() must equal Len(); AxpyEach panics with
// ErrCountMismatch otherwise.
func (m *MultiVector) AxpyEach(a []float64, y *MultiVector) {
	m.checkCount(len(a))
	m.checkCount(y.Len())
	start := time.Now()
	for i, vi := range m.mv {
		vi.Axpy(a[i], y.mv[i])
	}
	m.metrics().RecordUpdate(len(m.mv), time.Since(start))
}

// Scale multiplies element k by a: m[k] *= a. It panics with
// ErrIndexOutOfRange if k is outside [0, Len).
func (m *MultiVector) Scale(k int, a float64) {
	m.checkIndex(k)
	m.mv[k].Scale(a)
}

// ScaleEach multiplies element i by a[i]: m[i] *= a[i] for all i. a must
// have length Len(); ScaleEach panics with ErrCountMismatch otherwise.
func (m *MultiVector) ScaleEach(a []float64) {
	m.checkCount(len(a))
	start := time.Now()
	for i, vi := range m.mv {
		vi.Scale(a[i])
	}
	m.metrics().RecordUpdate(len(m.mv), time.Since(start))
}

// MulMatrix recombines the elements through a dense matrix:
//
//	dst[j] = sum_i m[i] * a.At(i, j)
//
// a must be m.Len() x dst.Len(); MulMatrix panics with ErrCountMismatch on
// either dimension. dst is zeroed first and must not share element storage
// with m. This is the dense-recombination step of randomized range finders
// (Q * A for a small coefficient matrix A).
func (m *MultiVector) MulMatrix(a mat.Matrix, dst *MultiVector) {
	r, c := a.Dims()
	m.checkCount(r)
	dst.checkCount(c)
	start := time.Now()
	dst.Zero()
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			dst.mv[j].Axpy(a.At(i, j), m.mv[i])
		}
	}
	m.metrics().RecordUpdate(c, time.Since(start))
}
