package structdiff

import (
	"fmt"
	"time"
)

// Kind identifies the container variant a value or difference belongs to.
type Kind int

const (
	KindInvalid Kind = iota
	KindSet
	KindVector
	KindMatrix
	KindRecord
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "Set"
	case KindVector:
		return "Vector"
	case KindMatrix:
		return "Matrix"
	case KindRecord:
		return "Record"
	case KindDict:
		return "Dict"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Container is the closed set of diffable container variants: Set, Vector,
// Matrix, Record and Dict. Implementations live in this package only.
type Container interface {
	// Kind returns the container variant.
	Kind() Kind

	diffContainer(other Container, o *options) (Difference, error)
}

// Difference is the immutable result of a single diff call. Concrete types
// carry typed accessors for the partitions; the interface covers the
// behavior shared by every variant.
type Difference interface {
	// Kind returns the variant of the containers that were diffed.
	Kind() Kind

	// String returns a short human-readable partition summary.
	String() string

	// Equal reports whether other is a difference of the same concrete
	// type with equal partitions.
	Equal(other Difference) bool

	// Hash returns a stable checksum over the partitions, consistent
	// with Equal.
	Hash() uint32
}

// Diff computes the structural difference between two containers of the
// same kind. Mismatched kinds fail with a KindMismatchError before any
// computation starts.
func Diff(a, b Container, optFns ...Option) (Difference, error) {
	o := applyOptions(optFns)
	if a.Kind() != b.Kind() {
		err := &KindMismatchError{A: a.Kind(), B: b.Kind()}
		finish(o, KindInvalid, time.Now(), err)
		return nil, err
	}

	start := time.Now()
	d, err := a.diffContainer(b, o)
	finish(o, a.Kind(), start, err)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// finish records metrics and logging for one completed diff operation.
func finish(o *options, kind Kind, start time.Time, err error) {
	duration := time.Since(start)
	o.metrics.RecordDiff(kind, duration, err)
	o.logger.LogDiff(kind, duration, err)
}
