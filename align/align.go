// Package align computes identifier partitions between two versions of an
// ordered container.
//
// Given the identifier sequences of an old and a new container version, the
// partition classifies each identifier as modified (present on both sides),
// added (new side only) or removed (old side only), and records the
// positional offset every identifier occupies in its source sequence. The
// offsets let callers gather the actual element values for each partition.
package align

import (
	"errors"
	"fmt"
)

// ErrDuplicateIdentifier is returned when an identifier occurs more than
// once within a single side.
var ErrDuplicateIdentifier = errors.New("duplicate identifier")

// Partition classifies the identifiers of two container versions.
//
// Modified and Added follow new-side source order, Removed follows old-side
// source order. The order is stable within a call but otherwise
// implementation-defined; callers must not assume anything beyond
// membership.
type Partition[ID comparable] struct {
	Modified []ID
	Added    []ID
	Removed  []ID

	oldPos map[ID]int
	newPos map[ID]int
}

// OldPos returns the offset of id within the old sequence.
func (p *Partition[ID]) OldPos(id ID) (int, bool) {
	pos, ok := p.oldPos[id]
	return pos, ok
}

// NewPos returns the offset of id within the new sequence.
func (p *Partition[ID]) NewPos(id ID) (int, bool) {
	pos, ok := p.newPos[id]
	return pos, ok
}

// Identifiers partitions the identifier sequences of an old container a and
// a new container b. Identifiers must be unique within each side; a
// duplicate yields ErrDuplicateIdentifier.
//
// An empty side short-circuits: with an empty old sequence the whole new
// side is added, with an empty new sequence the whole old side is removed.
func Identifiers[ID comparable](a, b []ID) (*Partition[ID], error) {
	p := &Partition[ID]{}

	// The position maps double as the uniqueness check.
	p.oldPos = make(map[ID]int, len(a))
	for i, id := range a {
		if _, dup := p.oldPos[id]; dup {
			return nil, fmt.Errorf("%w: %v at position %d of old side", ErrDuplicateIdentifier, id, i)
		}
		p.oldPos[id] = i
	}
	p.newPos = make(map[ID]int, len(b))
	for i, id := range b {
		if _, dup := p.newPos[id]; dup {
			return nil, fmt.Errorf("%w: %v at position %d of new side", ErrDuplicateIdentifier, id, i)
		}
		p.newPos[id] = i
	}

	if len(a) == 0 {
		p.Added = append(p.Added, b...)
		return p, nil
	}
	if len(b) == 0 {
		p.Removed = append(p.Removed, a...)
		return p, nil
	}

	for _, id := range b {
		if _, ok := p.oldPos[id]; ok {
			p.Modified = append(p.Modified, id)
		} else {
			p.Added = append(p.Added, id)
		}
	}
	for _, id := range a {
		if _, ok := p.newPos[id]; !ok {
			p.Removed = append(p.Removed, id)
		}
	}

	return p, nil
}

// Positional returns the partition for the default positional identifier
// spaces 0..nOld-1 and 0..nNew-1. The shared prefix of positions is
// modified; the tail of the longer side is added or removed.
func Positional(nOld, nNew int) *Partition[int] {
	p := &Partition[int]{
		oldPos: make(map[int]int, nOld),
		newPos: make(map[int]int, nNew),
	}
	for i := 0; i < nOld; i++ {
		p.oldPos[i] = i
	}
	for i := 0; i < nNew; i++ {
		p.newPos[i] = i
	}

	n := min(nOld, nNew)
	for i := 0; i < n; i++ {
		p.Modified = append(p.Modified, i)
	}
	for i := n; i < nNew; i++ {
		p.Added = append(p.Added, i)
	}
	for i := n; i < nOld; i++ {
		p.Removed = append(p.Removed, i)
	}

	return p
}
