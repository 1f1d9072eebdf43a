package vector

import "fmt"

// Vector is the arithmetic contract consumed by the multivec container.
//
// Implementations own their storage and layout. Binary operations (Axpy,
// Inner) accept any Vector; implementations should fast-path their own
// concrete type and fall back to the element-wise accessors otherwise.
// Layout mismatches surface as the implementation's own failure (the dense
// implementation panics with gonum's mat.ErrShape) and are not translated.
type Vector interface {
	// Len returns the number of entries.
	Len() int

	// AtVec returns the i-th entry.
	AtVec(i int) float64

	// SetVec sets the i-th entry to v.
	SetVec(i int, v float64)

	// Copy returns a deep copy sharing no storage with the receiver.
	Copy() Vector

	// Zero sets every entry to the additive identity.
	Zero()

	// Scale multiplies every entry by a.
	Scale(a float64)

	// Axpy adds a*x to the receiver in place.
	Axpy(a float64, x Vector)

	// Inner returns the inner product of the receiver with x.
	Inner(x Vector) float64

	// Norm returns the requested norm of the receiver.
	Norm(kind Norm) float64
}

// Norm selects a vector norm.
type Norm int

const (
	// NormL1 is the sum of absolute entries.
	NormL1 Norm = iota
	// NormL2 is the Euclidean norm.
	NormL2
	// NormLinf is the maximum absolute entry.
	NormLinf
)

func (n Norm) String() string {
	switch n {
	case NormL1:
		return "l1"
	case NormL2:
		return "l2"
	case NormLinf:
		return "linf"
	default:
		return fmt.Sprintf("Unknown(%d)", int(n))
	}
}

// Valid reports whether n names a supported norm kind.
func (n Norm) Valid() bool {
	switch n {
	case NormL1, NormL2, NormLinf:
		return true
	default:
		return false
	}
}

// ErrUnknownNorm indicates an unsupported norm kind.
type ErrUnknownNorm struct {
	Kind Norm
}

func (e ErrUnknownNorm) Error() string {
	return fmt.Sprintf("vector: unknown norm kind: %v", e.Kind)
}
