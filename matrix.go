package structdiff

import (
	"fmt"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/structdiff/align"
	"github.com/hupe1980/structdiff/internal/hash"
	"github.com/hupe1980/structdiff/sparse"
)

// Matrix is a dense row-major 2-D container.
type Matrix[V Number] struct {
	rows, cols int
	data       []V
}

// NewMatrix wraps a row-major value slice as a rows x cols matrix.
func NewMatrix[V Number](rows, cols int, data []V) (*Matrix[V], error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%w: matrix data length %d does not match shape %dx%d", ErrInvalidArgument, len(data), rows, cols)
	}
	return &Matrix[V]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Matrix[V]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[V]) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix[V]) At(i, j int) V { return m.data[i*m.cols+j] }

// String returns a short summary of the matrix shape.
func (m *Matrix[V]) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.rows, m.cols)
}

// Kind implements Container.
func (m *Matrix[V]) Kind() Kind { return KindMatrix }

// diffContainer aligns both dimensions positionally. Identifier-aligned
// matrix diffs go through MatricesBy, which carries the extra identifier
// type parameters the closed variant set cannot.
func (m *Matrix[V]) diffContainer(other Container, _ *options) (Difference, error) {
	w, ok := other.(*Matrix[V])
	if !ok {
		return nil, fmt.Errorf("%w: matrix element types differ (%T vs %T)", ErrInvalidArgument, m, other)
	}
	rows := align.Positional(m.rows, w.rows)
	cols := align.Positional(m.cols, w.cols)
	return diffMatrices(m, w, rows, cols), nil
}

// Matrices diffs two matrices under the default positional identifier
// spaces of their rows and columns.
func Matrices[V Number](a, b *Matrix[V], optFns ...Option) *MatrixDifference[int, int, V] {
	o := applyOptions(optFns)
	start := time.Now()
	rows := align.Positional(a.rows, b.rows)
	cols := align.Positional(a.cols, b.cols)
	d := diffMatrices(a, b, rows, cols)
	finish(o, KindMatrix, start, nil)
	return d
}

// MatricesBy diffs two matrices with explicit row and column identifiers.
// Row and column alignment are computed independently; each identifier
// sequence must match its dimension's length and be free of duplicates
// within itself.
func MatricesBy[RID comparable, CID comparable, V Number](a, b *Matrix[V], aRowIDs []RID, aColIDs []CID, bRowIDs []RID, bColIDs []CID, optFns ...Option) (*MatrixDifference[RID, CID, V], error) {
	o := applyOptions(optFns)
	start := time.Now()
	d, err := diffMatricesBy(a, b, aRowIDs, aColIDs, bRowIDs, bColIDs)
	finish(o, KindMatrix, start, err)
	return d, err
}

func diffMatricesBy[RID comparable, CID comparable, V Number](a, b *Matrix[V], aRowIDs []RID, aColIDs []CID, bRowIDs []RID, bColIDs []CID) (*MatrixDifference[RID, CID, V], error) {
	if err := checkDim("row", len(aRowIDs), a.rows, len(bRowIDs), b.rows); err != nil {
		return nil, err
	}
	if err := checkDim("column", len(aColIDs), a.cols, len(bColIDs), b.cols); err != nil {
		return nil, err
	}

	rows, err := align.Identifiers(aRowIDs, bRowIDs)
	if err != nil {
		return nil, &IdentifierError{Side: "row", Reason: "not unique within one side", cause: err}
	}
	cols, err := align.Identifiers(aColIDs, bColIDs)
	if err != nil {
		return nil, &IdentifierError{Side: "column", Reason: "not unique within one side", cause: err}
	}

	return diffMatrices(a, b, rows, cols), nil
}

func checkDim(side string, aIDs, aLen, bIDs, bLen int) error {
	if aIDs != aLen {
		return &IdentifierError{
			Side:   "old " + side,
			Reason: fmt.Sprintf("length %d does not match dimension length %d", aIDs, aLen),
		}
	}
	if bIDs != bLen {
		return &IdentifierError{
			Side:   "new " + side,
			Reason: fmt.Sprintf("length %d does not match dimension length %d", bIDs, bLen),
		}
	}
	return nil
}

func diffMatrices[RID comparable, CID comparable, V Number](a, b *Matrix[V], rows *align.Partition[RID], cols *align.Partition[CID]) *MatrixDifference[RID, CID, V] {
	d := &MatrixDifference[RID, CID, V]{
		modifiedRows: rows.Modified,
		modifiedCols: cols.Modified,
		addedRows:    rows.Added,
		addedCols:    cols.Added,
		removedRows:  rows.Removed,
		removedCols:  cols.Removed,
	}

	// Modified region: elementwise delta over the Cartesian product of the
	// modified rows and columns, flattened row-major.
	deltas := make([]V, 0, len(rows.Modified)*len(cols.Modified))
	for _, rid := range rows.Modified {
		ia, _ := rows.OldPos(rid)
		ib, _ := rows.NewPos(rid)
		for _, cid := range cols.Modified {
			ja, _ := cols.OldPos(cid)
			jb, _ := cols.NewPos(cid)
			deltas = append(deltas, b.At(ib, jb)-a.At(ia, ja))
		}
	}
	d.modified = sparse.FromDense(deltas)

	// Complement cells: every cell whose row or column falls outside the
	// modified Cartesian product, in the source matrix's natural row-major
	// order. Bitmaps over the modified positions keep the membership tests
	// off the hot loop's allocation path.
	d.added = complementCells(b, positionsIn(rows.Modified, rows.NewPos), positionsIn(cols.Modified, cols.NewPos))
	d.removed = complementCells(a, positionsIn(rows.Modified, rows.OldPos), positionsIn(cols.Modified, cols.OldPos))

	return d
}

// positionsIn builds a bitmap of the positions the given identifiers
// occupy in one side.
func positionsIn[ID comparable](ids []ID, pos func(ID) (int, bool)) *roaring.Bitmap {
	bm := roaring.New()
	for _, id := range ids {
		i, _ := pos(id)
		bm.Add(uint32(i))
	}
	return bm
}

// complementCells gathers, in row-major order, every cell of m whose row
// or column position falls outside the given masks.
func complementCells[V Number](m *Matrix[V], rowMask, colMask *roaring.Bitmap) []V {
	var out []V
	for i := 0; i < m.rows; i++ {
		rowIn := rowMask.Contains(uint32(i))
		for j := 0; j < m.cols; j++ {
			if rowIn && colMask.Contains(uint32(j)) {
				continue
			}
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// MatrixDifference partitions two matrices by independently aligned row
// and column identifiers. Modified values are the elementwise deltas over
// modified rows x modified columns, flattened row-major and stored
// sparsely. Added and removed values are the complement cells of the new
// and old matrix respectively, gathered in that matrix's natural row-major
// order.
type MatrixDifference[RID comparable, CID comparable, V Number] struct {
	modifiedRows []RID
	modifiedCols []CID
	addedRows    []RID
	addedCols    []CID
	removedRows  []RID
	removedCols  []CID

	modified *sparse.Vector[V]
	added    []V
	removed  []V
}

// Kind implements Difference.
func (d *MatrixDifference[RID, CID, V]) Kind() Kind { return KindMatrix }

// ModifiedRows returns the row identifiers present on both sides. Read-only.
func (d *MatrixDifference[RID, CID, V]) ModifiedRows() []RID { return d.modifiedRows }

// ModifiedCols returns the column identifiers present on both sides. Read-only.
func (d *MatrixDifference[RID, CID, V]) ModifiedCols() []CID { return d.modifiedCols }

// AddedRows returns the row identifiers present only on the new side. Read-only.
func (d *MatrixDifference[RID, CID, V]) AddedRows() []RID { return d.addedRows }

// AddedCols returns the column identifiers present only on the new side. Read-only.
func (d *MatrixDifference[RID, CID, V]) AddedCols() []CID { return d.addedCols }

// RemovedRows returns the row identifiers present only on the old side. Read-only.
func (d *MatrixDifference[RID, CID, V]) RemovedRows() []RID { return d.removedRows }

// RemovedCols returns the column identifiers present only on the old side. Read-only.
func (d *MatrixDifference[RID, CID, V]) RemovedCols() []CID { return d.removedCols }

// Modified returns the dense elementwise deltas over modified rows x
// modified columns, flattened row-major.
func (d *MatrixDifference[RID, CID, V]) Modified() []V { return d.modified.Dense() }

// ModifiedSparse returns the sparse delta representation.
func (d *MatrixDifference[RID, CID, V]) ModifiedSparse() *sparse.Vector[V] { return d.modified }

// Added returns the complement cells of the new matrix in row-major order.
// Read-only.
func (d *MatrixDifference[RID, CID, V]) Added() []V { return d.added }

// Removed returns the complement cells of the old matrix in row-major
// order. Read-only.
func (d *MatrixDifference[RID, CID, V]) Removed() []V { return d.removed }

// Equal implements Difference.
func (d *MatrixDifference[RID, CID, V]) Equal(other Difference) bool {
	o, ok := other.(*MatrixDifference[RID, CID, V])
	if !ok {
		return false
	}
	return slices.Equal(d.modifiedRows, o.modifiedRows) &&
		slices.Equal(d.modifiedCols, o.modifiedCols) &&
		slices.Equal(d.addedRows, o.addedRows) &&
		slices.Equal(d.addedCols, o.addedCols) &&
		slices.Equal(d.removedRows, o.removedRows) &&
		slices.Equal(d.removedCols, o.removedCols) &&
		d.modified.Equal(o.modified) &&
		slices.Equal(d.added, o.added) &&
		slices.Equal(d.removed, o.removed)
}

// Hash implements Difference.
func (d *MatrixDifference[RID, CID, V]) Hash() uint32 {
	var dg hash.Digest
	dg.WriteString("matrix")
	hashIDs(&dg, d.modifiedRows)
	hashIDs(&dg, d.modifiedCols)
	hashIDs(&dg, d.addedRows)
	hashIDs(&dg, d.addedCols)
	hashIDs(&dg, d.removedRows)
	hashIDs(&dg, d.removedCols)
	hashValues(&dg, d.modified.Dense())
	hashValues(&dg, d.added)
	hashValues(&dg, d.removed)
	return dg.Sum32()
}

func hashIDs[ID comparable](dg *hash.Digest, ids []ID) {
	for _, id := range ids {
		dg.WriteString(fmt.Sprint(id))
	}
}

func hashValues[V Number](dg *hash.Digest, vals []V) {
	for _, v := range vals {
		dg.WriteFloat64(float64(v))
	}
}

// String implements Difference.
func (d *MatrixDifference[RID, CID, V]) String() string {
	return fmt.Sprintf("MatrixDifference(modified=%dx%d added=(%d,%d) removed=(%d,%d))",
		len(d.modifiedRows), len(d.modifiedCols),
		len(d.addedRows), len(d.addedCols),
		len(d.removedRows), len(d.removedCols))
}

var (
	_ Container  = (*Matrix[float64])(nil)
	_ Difference = (*MatrixDifference[int, int, float64])(nil)
)
