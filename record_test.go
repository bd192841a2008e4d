package structdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	a := NewRecord().Set("a", 1).Set("b", 2)
	b := NewRecord().Set("b", 3).Set("c", 4)

	d, err := Records(a, b)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"b": 1.0}, d.Modified())
	assert.Equal(t, map[string]any{"c": 4}, d.Added())
	assert.Equal(t, map[string]any{"a": 1}, d.Removed())
}

func TestRecordsNumericWidening(t *testing.T) {
	// Mixed builtin numeric types widen to float64 before subtraction.
	a := NewRecord().Set("x", int32(10)).Set("y", 1.5)
	b := NewRecord().Set("x", uint8(14)).Set("y", float32(2.5))

	d, err := Records(a, b)
	require.NoError(t, err)

	assert.Equal(t, 4.0, d.Modified()["x"])
	assert.InDelta(t, 1.0, d.Modified()["y"].(float64), 1e-6)
}

func TestRecordsNested(t *testing.T) {
	a := NewRecord().
		Set("count", 1).
		Set("tags", NewSet("x", "y")).
		Set("inner", NewRecord().Set("n", 10))
	b := NewRecord().
		Set("count", 3).
		Set("tags", NewSet("y", "z")).
		Set("inner", NewRecord().Set("n", 12))

	d, err := Records(a, b)
	require.NoError(t, err)

	assert.Equal(t, 2.0, d.Modified()["count"])

	sd, ok := d.Modified()["tags"].(*SetDifference[string])
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"y"}, sd.Common().Items())
	assert.ElementsMatch(t, []string{"z"}, sd.Added().Items())
	assert.ElementsMatch(t, []string{"x"}, sd.Removed().Items())

	rd, ok := d.Modified()["inner"].(*RecordDifference)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"n": 2.0}, rd.Modified())
}

func TestRecordsIdentity(t *testing.T) {
	a := NewRecord().Set("x", 1).Set("y", 2)

	d, err := Records(a, a)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"x": 0.0, "y": 0.0}, d.Modified())
	assert.Empty(t, d.Added())
	assert.Empty(t, d.Removed())
}

func TestRecordsSymmetry(t *testing.T) {
	a := NewRecord().Set("a", 1).Set("b", 2)
	b := NewRecord().Set("b", 3).Set("c", 4)

	ab, err := Records(a, b)
	require.NoError(t, err)
	ba, err := Records(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab.Added(), ba.Removed())
	assert.Equal(t, ab.Removed(), ba.Added())
}

func TestRecordsTypeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		old, new any
	}{
		{"Strings", "foo", "bar"},
		{"NumberVsContainer", 1, NewSet(1)},
		{"ContainerVsNumber", NewSet(1), 2},
		{"KindMismatch", NewSet(1), NewVector([]float64{1})},
		{"NumberVsString", 1, "one"},
		{"Nil", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewRecord().Set("f", tt.old)
			b := NewRecord().Set("f", tt.new)

			_, err := Records(a, b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTypeMismatch)

			var tm *TypeMismatchError
			require.ErrorAs(t, err, &tm)
			assert.Equal(t, "f", tm.Field)
		})
	}
}

func TestRecordsFailFast(t *testing.T) {
	// An incompatible field aborts the whole diff even when other fields
	// are fine.
	a := NewRecord().Set("ok", 1).Set("bad", "x")
	b := NewRecord().Set("ok", 2).Set("bad", "y")

	d, err := Records(a, b)
	require.Error(t, err)
	assert.Nil(t, d)
}

func TestRecordOrder(t *testing.T) {
	r := NewRecord().Set("b", 1).Set("a", 2).Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, r.Names())
	assert.Equal(t, 2, r.Len())

	v, ok := r.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestDicts(t *testing.T) {
	a := Dict{"a": 1, "b": 2}
	b := Dict{"b": 3, "c": 4}

	d, err := Dicts(a, b)
	require.NoError(t, err)

	assert.Equal(t, KindDict, d.Kind())
	assert.Equal(t, map[string]any{"b": 1.0}, d.Modified())
	assert.Equal(t, map[string]any{"c": 4}, d.Added())
	assert.Equal(t, map[string]any{"a": 1}, d.Removed())
}

func TestDictsNested(t *testing.T) {
	a := Dict{"inner": Dict{"n": 1}}
	b := Dict{"inner": Dict{"n": 5}}

	d, err := Dicts(a, b)
	require.NoError(t, err)

	dd, ok := d.Modified()["inner"].(*DictDifference)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"n": 4.0}, dd.Modified())
}

func TestRecordDispatch(t *testing.T) {
	a := NewRecord().Set("x", 1)
	b := NewRecord().Set("x", 2)

	d, err := Diff(a, b)
	require.NoError(t, err)
	assert.Equal(t, KindRecord, d.Kind())

	// Record and Dict are distinct kinds.
	_, err = Diff(a, Dict{"x": 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRecordDifferenceEqualHash(t *testing.T) {
	a := NewRecord().Set("a", 1).Set("b", 2)
	b := NewRecord().Set("b", 3).Set("c", 4)

	d1, err := Records(a, b)
	require.NoError(t, err)
	d2, err := Records(a, b)
	require.NoError(t, err)
	d3, err := Records(a, NewRecord().Set("b", 9))
	require.NoError(t, err)

	assert.True(t, d1.Equal(d2))
	assert.False(t, d1.Equal(d3))
	assert.Equal(t, d1.Hash(), d2.Hash())
	assert.NotEqual(t, d1.Hash(), d3.Hash())

	assert.Equal(t, "RecordDifference(modified=1 added=1 removed=1)", d1.String())
}

func TestRecordDifferenceEqualNested(t *testing.T) {
	mk := func() *RecordDifference {
		d, err := Records(
			NewRecord().Set("s", NewSet(1, 2)),
			NewRecord().Set("s", NewSet(2, 3)),
		)
		require.NoError(t, err)
		return d
	}

	assert.True(t, mk().Equal(mk()))
	assert.Equal(t, mk().Hash(), mk().Hash())
}
