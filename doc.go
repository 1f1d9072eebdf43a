// Package multivec provides a batched container for algebraic vectors.
//
// A MultiVector owns a fixed-size ordered collection of vectors sharing one
// layout and exposes batched linear algebra across the collection: Gram
// matrices, linear combinations, per-element axpy and scaling, batched
// norms, and in-place orthogonalization. It is the building block that
// randomized SVD, low-rank approximation and inexact Newton-CG pipelines
// iterate on.
//
// All per-vector arithmetic is delegated to the vector.Vector abstraction;
// package vector/dense supplies the gonum-backed implementation.
//
// # Quick Start
//
//	template := dense.NewDense(128)
//	mv := multivec.New(template, 16)            // 16 zeroed vectors of dim 128
//	util.NewRNG(1).FillMultiVector(mv)
//
//	gram := make([]float64, 16*16)
//	mv.GramSelf(gram)                           // gram[i+16*j] = <mv[i], mv[j]>
//
//	r := mv.Orthogonalize()                     // in-place MGS, returns R
//
// # Parallel batched reads
//
//	mv := multivec.New(template, 64, multivec.WithWorkers(runtime.NumCPU()))
//	mv.GramSelf(gram) // pair-partitioned across workers
//
// # Contract violations
//
// Out-of-range indices and mismatched buffer lengths are programmer errors:
// the methods panic with the typed values in errors.go rather than returning
// an error, in all build modes. Failures raised by the underlying vector
// arithmetic (e.g. mat.ErrShape on incompatible layouts) propagate
// unchanged. Batched mutators are not atomic: a panic mid-loop leaves the
// container partially mutated.
//
// # Key Features
//
//   - Symmetric Gram computation does half the inner-product work and
//     mirrors the result
//   - Same-object fast path when a cross Gram is requested against itself
//   - Optional data-parallel batched reads (WithWorkers)
//   - Structured logging (WithLogger) and operation metrics
//     (WithMetricsCollector)
package multivec
