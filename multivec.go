package multivec

import (
	"github.com/mreduce/multivec/vector"
)

// MultiVector is a fixed-size ordered collection of vectors sharing one
// layout. Every element is created by deep-copying a template vector, so any
// pairwise inner product or axpy across the collection is well-defined.
//
// The container exclusively owns its elements. At returns the element handle
// itself for in-place mutation; its lifetime is tied to the container.
//
// A MultiVector is not safe for concurrent use without external
// synchronization. Concurrent read-only operations are safe as long as no
// mutation runs at the same time.
//
// The zero value is an empty container with default options; use New or
// NewEmpty to attach options.
type MultiVector struct {
	mv   []vector.Vector
	opts options
}

// New returns a container holding n zeroed deep copies of template's
// layout. It panics with ErrInvalidCount if n is negative.
func New(template vector.Vector, n int, optFns ...Option) *MultiVector {
	m := NewEmpty(optFns...)
	m.Resize(template, n)
	return m
}

// NewEmpty returns a zero-length container.
func NewEmpty(optFns ...Option) *MultiVector {
	return &MultiVector{opts: applyOptions(optFns)}
}

// Resize discards the current elements and reallocates n zeroed copies of
// template's layout. Prior contents are lost. It panics with
// ErrInvalidCount if n is negative.
func (m *MultiVector) Resize(template vector.Vector, n int) {
	if n < 0 {
		panic(ErrInvalidCount{Count: n})
	}
	mv := make([]vector.Vector, n)
	for i := range mv {
		v := template.Copy()
		v.Zero()
		mv[i] = v
	}
	m.mv = mv
	m.logger().LogResize(n, template.Len())
}

// Clone returns a deep copy: every element is copied and shares no storage
// with the receiver. Options are carried over.
func (m *MultiVector) Clone() *MultiVector {
	mv := make([]vector.Vector, len(m.mv))
	for i, v := range m.mv {
		mv[i] = v.Copy()
	}
	return &MultiVector{mv: mv, opts: m.opts}
}

// Len returns the number of vectors in the container.
func (m *MultiVector) Len() int { return len(m.mv) }

// At returns the element at index i. The returned handle aliases the
// container's element: mutations through it are visible to subsequent
// batched operations. It panics with ErrIndexOutOfRange if i is outside
// [0, Len).
func (m *MultiVector) At(i int) vector.Vector {
	m.checkIndex(i)
	return m.mv[i]
}

// Set replaces the element at index i with v. The container takes ownership
// of v; v must share the layout of the remaining elements. It panics with
// ErrIndexOutOfRange if i is outside [0, Len).
func (m *MultiVector) Set(i int, v vector.Vector) {
	m.checkIndex(i)
	m.mv[i] = v
}

// Zero sets every element to the additive identity.
func (m *MultiVector) Zero() {
	for _, v := range m.mv {
		v.Zero()
	}
}

// Swap exchanges the element sequences of m and other in constant time. No
// element is copied: handles previously returned by At keep naming the same
// vectors, which now live in the other container. Options stay with their
// containers.
func (m *MultiVector) Swap(other *MultiVector) {
	m.mv, other.mv = other.mv, m.mv
}

func (m *MultiVector) checkIndex(i int) {
	if i < 0 || i >= len(m.mv) {
		panic(ErrIndexOutOfRange{Index: i, Len: len(m.mv)})
	}
}

func (m *MultiVector) checkCount(n int) {
	if n != len(m.mv) {
		panic(ErrCountMismatch{Expected: len(m.mv), Actual: n})
	}
}

// sameStorage reports whether other shares the receiver's element sequence.
// This is storage identity, not value equality, mirroring the usual
// same-object fast path of Gram computations.
func (m *MultiVector) sameStorage(other *MultiVector) bool {
	if m == other {
		return true
	}
	return len(m.mv) > 0 && len(other.mv) == len(m.mv) && &m.mv[0] == &other.mv[0]
}

func (m *MultiVector) workers() int {
	if m.opts.workers < 1 {
		return 1
	}
	return m.opts.workers
}

var noopLog = NoopLogger()

// logger tolerates zero-value containers that never went through
// applyOptions.
func (m *MultiVector) logger() *Logger {
	if m.opts.logger == nil {
		return noopLog
	}
	return m.opts.logger
}

func (m *MultiVector) metrics() MetricsCollector {
	if m.opts.metricsCollector == nil {
		return NoopMetricsCollector{}
	}
	return m.opts.metricsCollector
}
