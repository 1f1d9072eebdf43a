// Package vector defines the algebraic vector abstraction the multivec
// container builds on.
//
// The container delegates all per-vector arithmetic (copy, zeroing, axpy,
// inner products, norms, scaling) to the Vector interface; package
// vector/dense provides the gonum-backed implementation used in practice.
//
// # Supported Norms
//
//   - NormL1: sum of absolute entries
//   - NormL2: Euclidean norm (default for orthogonalization)
//   - NormLinf: maximum absolute entry
package vector
