package structdiff

import (
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/structdiff/align"
	"github.com/hupe1980/structdiff/internal/hash"
	"github.com/hupe1980/structdiff/sparse"
)

// Number constrains element types that support subtraction. Deltas over
// unsigned types wrap per Go's unsigned arithmetic.
type Number = sparse.Number

// Vector pairs ordered values with the identifier sequence used to align
// positions across versions. Use NewVector for the default positional
// identifier space or NewVectorIDs for explicit identifiers.
type Vector[ID comparable, V Number] struct {
	data []V
	ids  []ID
}

// NewVector wraps values with positional identifiers (0..n-1).
func NewVector[V Number](data []V) Vector[int, V] {
	ids := make([]int, len(data))
	for i := range ids {
		ids[i] = i
	}
	return Vector[int, V]{data: data, ids: ids}
}

// NewVectorIDs wraps values with explicit identifiers. The identifier
// sequence must match the value length; identifiers must be unique within
// the sequence (checked at diff time).
func NewVectorIDs[ID comparable, V Number](data []V, ids []ID) (Vector[ID, V], error) {
	if len(ids) != len(data) {
		return Vector[ID, V]{}, &IdentifierError{
			Reason: fmt.Sprintf("length %d does not match container length %d", len(ids), len(data)),
		}
	}
	return Vector[ID, V]{data: data, ids: ids}, nil
}

// Len returns the number of elements.
func (v Vector[ID, V]) Len() int { return len(v.data) }

// Values returns the wrapped values. Read-only.
func (v Vector[ID, V]) Values() []V { return v.data }

// IDs returns the identifier sequence. Read-only.
func (v Vector[ID, V]) IDs() []ID { return v.ids }

// Kind implements Container.
func (v Vector[ID, V]) Kind() Kind { return KindVector }

func (v Vector[ID, V]) diffContainer(other Container, _ *options) (Difference, error) {
	w, ok := other.(Vector[ID, V])
	if !ok {
		return nil, fmt.Errorf("%w: vector element or identifier types differ (%T vs %T)", ErrInvalidArgument, v, other)
	}
	return diffVectorsBy(v.data, w.data, v.ids, w.ids)
}

// Vectors diffs two value sequences under the default positional
// identifier space (0..n-1 on each side): the shared prefix of positions
// is modified, the tail of the longer side is added or removed.
func Vectors[V Number](a, b []V, optFns ...Option) *VectorDifference[int, V] {
	o := applyOptions(optFns)
	start := time.Now()
	d := diffVectors(a, b, align.Positional(len(a), len(b)))
	finish(o, KindVector, start, nil)
	return d
}

// VectorsBy diffs two value sequences aligned by explicit identifiers.
// Each identifier sequence must match its container's length and be free
// of duplicates within itself.
func VectorsBy[ID comparable, V Number](a, b []V, aIDs, bIDs []ID, optFns ...Option) (*VectorDifference[ID, V], error) {
	o := applyOptions(optFns)
	start := time.Now()
	d, err := diffVectorsBy(a, b, aIDs, bIDs)
	finish(o, KindVector, start, err)
	return d, err
}

func diffVectorsBy[ID comparable, V Number](a, b []V, aIDs, bIDs []ID) (*VectorDifference[ID, V], error) {
	if len(aIDs) != len(a) {
		return nil, &IdentifierError{
			Side:   "old",
			Reason: fmt.Sprintf("length %d does not match container length %d", len(aIDs), len(a)),
		}
	}
	if len(bIDs) != len(b) {
		return nil, &IdentifierError{
			Side:   "new",
			Reason: fmt.Sprintf("length %d does not match container length %d", len(bIDs), len(b)),
		}
	}

	p, err := align.Identifiers(aIDs, bIDs)
	if err != nil {
		return nil, &IdentifierError{Reason: "not unique within one side", cause: err}
	}

	return diffVectors(a, b, p), nil
}

func diffVectors[ID comparable, V Number](a, b []V, p *align.Partition[ID]) *VectorDifference[ID, V] {
	d := &VectorDifference[ID, V]{
		modifiedIndices: p.Modified,
		addedIndices:    p.Added,
		removedIndices:  p.Removed,
	}

	deltas := make([]V, len(p.Modified))
	for k, id := range p.Modified {
		i, _ := p.OldPos(id)
		j, _ := p.NewPos(id)
		deltas[k] = b[j] - a[i]
	}
	d.modified = sparse.FromDense(deltas)

	d.added = gather(b, p.Added, p.NewPos)
	d.removed = gather(a, p.Removed, p.OldPos)

	return d
}

// gather collects the values the given identifiers occupy in src.
func gather[ID comparable, V Number](src []V, ids []ID, pos func(ID) (int, bool)) []V {
	out := make([]V, len(ids))
	for k, id := range ids {
		i, _ := pos(id)
		out[k] = src[i]
	}
	return out
}

// VectorDifference partitions two vectors by aligned identifier. Each
// value slice is positionally aligned with its index slice; modified
// values hold the elementwise delta (new minus old) and are stored
// sparsely. Index iteration order is stable within the value but otherwise
// implementation-defined.
type VectorDifference[ID comparable, V Number] struct {
	modifiedIndices []ID
	addedIndices    []ID
	removedIndices  []ID

	modified *sparse.Vector[V]
	added    []V
	removed  []V
}

// Kind implements Difference.
func (d *VectorDifference[ID, V]) Kind() Kind { return KindVector }

// ModifiedIndices returns the identifiers present on both sides. Read-only.
func (d *VectorDifference[ID, V]) ModifiedIndices() []ID { return d.modifiedIndices }

// AddedIndices returns the identifiers present only on the new side. Read-only.
func (d *VectorDifference[ID, V]) AddedIndices() []ID { return d.addedIndices }

// RemovedIndices returns the identifiers present only on the old side. Read-only.
func (d *VectorDifference[ID, V]) RemovedIndices() []ID { return d.removedIndices }

// Modified returns the dense elementwise deltas (new minus old), aligned
// with ModifiedIndices.
func (d *VectorDifference[ID, V]) Modified() []V { return d.modified.Dense() }

// ModifiedSparse returns the sparse delta representation.
func (d *VectorDifference[ID, V]) ModifiedSparse() *sparse.Vector[V] { return d.modified }

// Added returns the values at the added identifiers, aligned with
// AddedIndices. Read-only.
func (d *VectorDifference[ID, V]) Added() []V { return d.added }

// Removed returns the values at the removed identifiers, aligned with
// RemovedIndices. Read-only.
func (d *VectorDifference[ID, V]) Removed() []V { return d.removed }

// Equal implements Difference.
func (d *VectorDifference[ID, V]) Equal(other Difference) bool {
	o, ok := other.(*VectorDifference[ID, V])
	if !ok {
		return false
	}
	return slices.Equal(d.modifiedIndices, o.modifiedIndices) &&
		slices.Equal(d.addedIndices, o.addedIndices) &&
		slices.Equal(d.removedIndices, o.removedIndices) &&
		d.modified.Equal(o.modified) &&
		slices.Equal(d.added, o.added) &&
		slices.Equal(d.removed, o.removed)
}

// Hash implements Difference.
func (d *VectorDifference[ID, V]) Hash() uint32 {
	var dg hash.Digest
	dg.WriteString("vector")
	hashIDs(&dg, d.modifiedIndices)
	hashIDs(&dg, d.addedIndices)
	hashIDs(&dg, d.removedIndices)
	hashValues(&dg, d.modified.Dense())
	hashValues(&dg, d.added)
	hashValues(&dg, d.removed)
	return dg.Sum32()
}

// String implements Difference.
func (d *VectorDifference[ID, V]) String() string {
	return fmt.Sprintf("VectorDifference(modified=%d added=%d removed=%d)",
		len(d.modifiedIndices), len(d.addedIndices), len(d.removedIndices))
}

var (
	_ Container  = Vector[int, float64]{}
	_ Difference = (*VectorDifference[int, float64])(nil)
)
