// Package dense provides the gonum-backed dense implementation of
// vector.Vector.
//
// Dense wraps mat.VecDense, so arithmetic between Dense operands runs on
// gonum's BLAS-backed kernels. Operations against foreign vector.Vector
// implementations fall back to the element-wise accessors.
//
// # Usage
//
//	v := dense.FromSlice([]float64{1, 2, 3})
//	w := v.Copy()
//	w.Axpy(2, v)
//	fmt.Println(v.Inner(w), v.Norm(vector.NormL2))
package dense
