package multivec

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mreduce/multivec/vector"
)

// DotVector computes out[i] = <m[i], v> for every element. out must have
// length Len(); DotVector panics with ErrCountMismatch otherwise.
func (m *MultiVector) DotVector(v vector.Vector, out []float64) {
	m.checkCount(len(out))
	start := time.Now()
	if w := m.workers(); w > 1 && len(m.mv) > 1 {
		var g errgroup.Group
		g.SetLimit(w)
		for i := range m.mv {
			i := i
			g.Go(func() error {
				out[i] = m.mv[i].Inner(v)
				return nil
			})
		}
		_ = g.Wait() // tasks never return errors
	} else {
		for i, vi := range m.mv {
			out[i] = vi.Inner(v)
		}
	}
	m.metrics().RecordGram(len(m.mv), time.Since(start))
	m.logger().LogGram(len(m.mv), 1, m.workers())
}

// GramSelf computes the symmetric Gram matrix of the elements into out,
// stored column-major: out[i + n*j] = <m[i], m[j]> with n = Len(). Each
// off-diagonal pair is computed once and mirrored; the diagonal is the
// self-inner-product. out must have length Len()*Len(); GramSelf panics
// with ErrCountMismatch otherwise.
func (m *MultiVector) GramSelf(out []float64) {
	n := len(m.mv)
	if len(out) != n*n {
		panic(ErrCountMismatch{Expected: n * n, Actual: len(out)})
	}
	start := time.Now()
	if w := m.workers(); w > 1 && n > 1 {
		var g errgroup.Group
		g.SetLimit(w)
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				// Task i owns every unordered pair (j, i) with j <= i, so
				// the mirrored writes of distinct tasks never overlap.
				m.gramRow(i, out)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := 0; i < n; i++ {
			m.gramRow(i, out)
		}
	}
	m.metrics().RecordGram(n*(n+1)/2, time.Since(start))
	m.logger().LogGram(n, n, m.workers())
}

func (m *MultiVector) gramRow(i int, out []float64) {
	n := len(m.mv)
	out[i+n*i] = m.mv[i].Inner(m.mv[i])
	for j := 0; j < i; j++ {
		d := m.mv[i].Inner(m.mv[j])
		out[i+n*j] = d
		out[j+n*i] = d
	}
}

// Dot computes the cross Gram matrix between m and other into out, stored
// column-major with m's index fastest: out[i + n*j] = <m[i], other[j]>,
// n = m.Len(). out must have length m.Len()*other.Len(); Dot panics with
// ErrCountMismatch otherwise.
//
// When other shares m's underlying element storage the computation
// dispatches to GramSelf, halving the inner-product work. The check is
// storage identity, never value equality.
func (m *MultiVector) Dot(other *MultiVector, out []float64) {
	if m.sameStorage(other) {
		m.GramSelf(out)
		return
	}
	n, c := len(m.mv), len(other.mv)
	if len(out) != n*c {
		panic(ErrCountMismatch{Expected: n * c, Actual: len(out)})
	}
	start := time.Now()
	if w := m.workers(); w > 1 && n > 1 {
		var g errgroup.Group
		g.SetLimit(w)
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				for j := 0; j < c; j++ {
					out[i+n*j] = m.mv[i].Inner(other.mv[j])
				}
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < c; j++ {
				out[i+n*j] = m.mv[i].Inner(other.mv[j])
			}
		}
	}
	m.metrics().RecordGram(n*c, time.Since(start))
	m.logger().LogGram(n, c, m.workers())
}

// Norms computes out[i] = the requested norm of element i. out must have
// length Len(); Norms panics with ErrCountMismatch otherwise. Unsupported
// norm kinds surface as the vector implementation's own failure.
func (m *MultiVector) Norms(kind vector.Norm, out []float64) {
	m.checkCount(len(out))
	start := time.Now()
	if w := m.workers(); w > 1 && len(m.mv) > 1 {
		var g errgroup.Group
		g.SetLimit(w)
		for i := range m.mv {
			i := i
			g.Go(func() error {
				out[i] = m.mv[i].Norm(kind)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, vi := range m.mv {
			out[i] = vi.Norm(kind)
		}
	}
	m.metrics().RecordNorms(len(m.mv), time.Since(start))
}
