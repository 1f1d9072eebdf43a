package multivec

import "fmt"

// Contract violations (out-of-range indices, mismatched buffer lengths,
// negative counts) are programmer errors: the container panics with one of
// the typed values below instead of returning an error, in all build modes.
// This matches the panic convention of gonum's mat package, which backs the
// default vector implementation. Failures raised by the underlying vector
// arithmetic propagate unchanged.

// ErrIndexOutOfRange indicates an element index outside [0, Len).
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("multivec: index %d out of range [0, %d)", e.Index, e.Len)
}

// ErrCountMismatch indicates a scalar or output buffer whose length does
// not match the required element count.
type ErrCountMismatch struct {
	Expected int
	Actual   int
}

func (e ErrCountMismatch) Error() string {
	return fmt.Sprintf("multivec: count mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidCount indicates a negative element count.
type ErrInvalidCount struct {
	Count int
}

func (e ErrInvalidCount) Error() string {
	return fmt.Sprintf("multivec: invalid count: %d", e.Count)
}
