// Package sparse provides a sparse numeric vector backed by a roaring bitmap.
//
// Delta vectors produced by structural diffs are typically mostly zero: only
// a few aligned positions actually change between two versions. The sparse
// representation keeps the nonzero positions in a roaring bitmap and packs
// their values densely, so unchanged regions cost no memory.
package sparse

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Number constrains element types that support subtraction.
// Deltas over unsigned types wrap per Go's unsigned arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is an immutable sparse vector. Positions absent from the nonzero
// bitmap read as the zero value. Positions are strictly 32-bit, allowing
// for max 4 billion elements per vector.
type Vector[V Number] struct {
	n    int
	nz   *roaring.Bitmap
	vals []V // packed values for nonzero positions, ascending position order
}

// FromDense builds a sparse vector from a dense slice. Panics if dense
// exceeds the 32-bit position space.
func FromDense[V Number](dense []V) *Vector[V] {
	if uint64(len(dense)) > math.MaxUint32 {
		panic(fmt.Sprintf("sparse: length %d exceeds 32-bit position space", len(dense)))
	}
	v := &Vector[V]{n: len(dense), nz: roaring.New()}
	for i, x := range dense {
		if x != 0 {
			v.nz.Add(uint32(i))
			v.vals = append(v.vals, x)
		}
	}
	return v
}

// Len returns the logical length of the vector.
func (v *Vector[V]) Len() int { return v.n }

// NNZ returns the number of nonzero positions.
func (v *Vector[V]) NNZ() int { return int(v.nz.GetCardinality()) }

// Get returns the value at position i. Panics if i is out of range.
func (v *Vector[V]) Get(i int) V {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("sparse: index %d out of range [0,%d)", i, v.n))
	}
	if !v.nz.Contains(uint32(i)) {
		var zero V
		return zero
	}
	return v.vals[v.nz.Rank(uint32(i))-1]
}

// Dense materializes the vector as a dense slice.
func (v *Vector[V]) Dense() []V {
	out := make([]V, v.n)
	it := v.nz.Iterator()
	for k := 0; it.HasNext(); k++ {
		out[it.Next()] = v.vals[k]
	}
	return out
}

// Iterate calls fn for each nonzero position in ascending order.
// Iteration stops early if fn returns false.
func (v *Vector[V]) Iterate(fn func(i int, x V) bool) {
	it := v.nz.Iterator()
	for k := 0; it.HasNext(); k++ {
		if !fn(int(it.Next()), v.vals[k]) {
			return
		}
	}
}

// Equal reports whether two sparse vectors hold the same logical contents.
func (v *Vector[V]) Equal(o *Vector[V]) bool {
	return v.n == o.n && v.nz.Equals(o.nz) && slices.Equal(v.vals, o.vals)
}

// String returns a short summary of the vector shape.
func (v *Vector[V]) String() string {
	return fmt.Sprintf("sparse.Vector(len=%d nnz=%d)", v.n, v.NNZ())
}
