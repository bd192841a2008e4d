package structdiff

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindSet, "Set"},
		{KindVector, "Vector"},
		{KindMatrix, "Matrix"},
		{KindRecord, "Record"},
		{KindDict, "Dict"},
		{Kind(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestDiffKindMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b Container
	}{
		{"SetVsVector", NewSet(1), NewVector([]float64{1})},
		{"VectorVsRecord", NewVector([]float64{1}), NewRecord().Set("x", 1)},
		{"RecordVsDict", NewRecord().Set("x", 1), Dict{"x": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Diff(tt.a, tt.b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			var km *KindMismatchError
			require.ErrorAs(t, err, &km)
			assert.Equal(t, tt.a.Kind(), km.A)
			assert.Equal(t, tt.b.Kind(), km.B)
		})
	}
}

func TestErrorClasses(t *testing.T) {
	km := &KindMismatchError{A: KindSet, B: KindVector}
	assert.True(t, errors.Is(km, ErrInvalidArgument))
	assert.Equal(t, "container kind mismatch: Set vs Vector", km.Error())

	ie := &IdentifierError{Side: "old", Reason: "length 2 does not match container length 3"}
	assert.True(t, errors.Is(ie, ErrInvalidArgument))
	assert.Equal(t, "old identifiers: length 2 does not match container length 3", ie.Error())

	tm := &TypeMismatchError{Field: "f", OldType: "string", NewType: "int"}
	assert.True(t, errors.Is(tm, ErrTypeMismatch))
	assert.Equal(t, `field "f": cannot diff string against int`, tm.Error())
}

func TestDiffMetrics(t *testing.T) {
	mc := &BasicMetricsCollector{}

	_, err := Diff(NewSet(1, 2), NewSet(2, 3), WithMetricsCollector(mc))
	require.NoError(t, err)
	_, err = Diff(NewSet(1), NewVector([]float64{1}), WithMetricsCollector(mc))
	require.Error(t, err)

	assert.Equal(t, int64(2), mc.DiffCount.Load())
	assert.Equal(t, int64(1), mc.DiffErrors.Load())
}

func TestDiffLoggerOption(t *testing.T) {
	// Logging must not change results; nil resets to the noop logger.
	d1, err := Diff(NewSet(1, 2), NewSet(2, 3), WithLogger(NoopLogger()))
	require.NoError(t, err)
	d2, err := Diff(NewSet(1, 2), NewSet(2, 3), WithLogger(nil))
	require.NoError(t, err)

	assert.True(t, d1.Equal(d2))
	assert.Equal(t, d1.Hash(), d2.Hash())
}

func TestDifferenceCrossKindEqual(t *testing.T) {
	sd := Sets(NewSet(1), NewSet(1))
	vd := Vectors([]float64{1}, []float64{1})

	assert.False(t, sd.Equal(vd))
	assert.False(t, vd.Equal(sd))
}
