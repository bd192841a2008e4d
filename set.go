package structdiff

import (
	"fmt"
	"time"

	"github.com/hupe1980/structdiff/internal/hash"
)

// Set is a hash-backed set of comparable elements. Use NewSet to create
// one; the zero value is not usable.
type Set[T comparable] struct {
	m map[T]struct{}
}

// NewSet returns a set holding the given items.
func NewSet[T comparable](items ...T) Set[T] {
	s := Set[T]{m: make(map[T]struct{}, len(items))}
	for _, it := range items {
		s.m[it] = struct{}{}
	}
	return s
}

// Add inserts item into the set.
func (s Set[T]) Add(item T) {
	s.m[item] = struct{}{}
}

// Contains reports whether item is in the set.
func (s Set[T]) Contains(item T) bool {
	_, ok := s.m[item]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s.m) }

// Items returns the elements in undefined order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s.m))
	for it := range s.m {
		out = append(out, it)
	}
	return out
}

// Clone returns a copy of the set.
func (s Set[T]) Clone() Set[T] {
	c := Set[T]{m: make(map[T]struct{}, len(s.m))}
	for it := range s.m {
		c.m[it] = struct{}{}
	}
	return c
}

// Equal reports whether two sets hold the same elements.
func (s Set[T]) Equal(o Set[T]) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for it := range s.m {
		if !o.Contains(it) {
			return false
		}
	}
	return true
}

// String returns a short summary of the set.
func (s Set[T]) String() string {
	return fmt.Sprintf("Set(len=%d)", len(s.m))
}

// Kind implements Container.
func (s Set[T]) Kind() Kind { return KindSet }

func (s Set[T]) diffContainer(other Container, _ *options) (Difference, error) {
	w, ok := other.(Set[T])
	if !ok {
		return nil, fmt.Errorf("%w: set element types differ (%T vs %T)", ErrInvalidArgument, s, other)
	}
	return diffSets(s, w), nil
}

// hashContent returns an order-independent checksum of the elements.
func (s Set[T]) hashContent() uint32 {
	var u hash.Unordered
	for it := range s.m {
		u.Add(hash.String(fmt.Sprint(it)))
	}
	return u.Sum32()
}

// Sets computes the membership difference of two sets: common is the
// intersection, added holds the elements only in b, removed the elements
// only in a. The three partitions are pairwise disjoint.
func Sets[T comparable](a, b Set[T], optFns ...Option) *SetDifference[T] {
	o := applyOptions(optFns)
	start := time.Now()
	d := diffSets(a, b)
	finish(o, KindSet, start, nil)
	return d
}

func diffSets[T comparable](a, b Set[T]) *SetDifference[T] {
	d := &SetDifference[T]{
		common:  NewSet[T](),
		added:   NewSet[T](),
		removed: NewSet[T](),
	}

	// Intersect over the smaller side.
	small, large := a, b
	if b.Len() < a.Len() {
		small, large = b, a
	}
	for it := range small.m {
		if large.Contains(it) {
			d.common.m[it] = struct{}{}
		}
	}

	for it := range b.m {
		if !a.Contains(it) {
			d.added.m[it] = struct{}{}
		}
	}
	for it := range a.m {
		if !b.Contains(it) {
			d.removed.m[it] = struct{}{}
		}
	}

	return d
}

// SetDifference partitions two sets into common, added and removed
// elements. The partitions are pairwise disjoint; common plus added equals
// the new set, common plus removed equals the old set. Treat the returned
// sets as read-only.
type SetDifference[T comparable] struct {
	common  Set[T]
	added   Set[T]
	removed Set[T]
}

// Kind implements Difference.
func (d *SetDifference[T]) Kind() Kind { return KindSet }

// Common returns the elements present in both sets.
func (d *SetDifference[T]) Common() Set[T] { return d.common }

// Added returns the elements present only in the new set.
func (d *SetDifference[T]) Added() Set[T] { return d.added }

// Removed returns the elements present only in the old set.
func (d *SetDifference[T]) Removed() Set[T] { return d.removed }

// Equal implements Difference.
func (d *SetDifference[T]) Equal(other Difference) bool {
	o, ok := other.(*SetDifference[T])
	if !ok {
		return false
	}
	return d.common.Equal(o.common) && d.added.Equal(o.added) && d.removed.Equal(o.removed)
}

// Hash implements Difference.
func (d *SetDifference[T]) Hash() uint32 {
	var dg hash.Digest
	dg.WriteString("set")
	dg.WriteUint32(d.common.hashContent())
	dg.WriteUint32(d.added.hashContent())
	dg.WriteUint32(d.removed.hashContent())
	return dg.Sum32()
}

// String implements Difference.
func (d *SetDifference[T]) String() string {
	return fmt.Sprintf("SetDifference(common=%d added=%d removed=%d)",
		d.common.Len(), d.added.Len(), d.removed.Len())
}

var (
	_ Container  = Set[int]{}
	_ Difference = (*SetDifference[int])(nil)
)
