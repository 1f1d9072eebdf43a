package multivec

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/mreduce/multivec/vector"
)

// orthoTol is the L2 threshold below which a residual is treated as
// linearly dependent on its predecessors.
const orthoTol = 1e-12

// Orthogonalize orthonormalizes the elements in place using modified
// Gram-Schmidt and returns the upper-triangular factor R of the thin QR
// factorization of the element set:
//
//	orig[k] = sum_{j<=k} R(j, k) * m[j]
//
// after the call, with <m[i], m[j]> = delta_ij for the retained basis.
// An element whose residual L2 norm falls below a small threshold is
// numerically dependent on its predecessors; it is zeroed and its R(k, k)
// stays 0. The returned matrix is Len() x Len() (empty for an empty
// container).
func (m *MultiVector) Orthogonalize() *mat.Dense {
	n := len(m.mv)
	if n == 0 {
		return &mat.Dense{}
	}
	start := time.Now()
	r := mat.NewDense(n, n, nil)
	rank := 0
	for k := 0; k < n; k++ {
		vk := m.mv[k]
		for j := 0; j < k; j++ {
			c := m.mv[j].Inner(vk)
			r.Set(j, k, c)
			vk.Axpy(-c, m.mv[j])
		}
		nrm := vk.Norm(vector.NormL2)
		if nrm <= orthoTol {
			vk.Zero()
			continue
		}
		r.Set(k, k, nrm)
		vk.Scale(1 / nrm)
		rank++
	}
	m.metrics().RecordUpdate(n, time.Since(start))
	m.logger().LogOrthogonalize(n, rank)
	return r
}
