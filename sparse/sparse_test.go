package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromDense(t *testing.T) {
	tests := []struct {
		name  string
		dense []float64
		nnz   int
	}{
		{"AllZero", []float64{0, 0, 0, 0}, 0},
		{"Mixed", []float64{0, 3, 0, -1}, 2},
		{"AllNonzero", []float64{1, 2, 3}, 3},
		{"Empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromDense(tt.dense)

			assert.Equal(t, len(tt.dense), v.Len())
			assert.Equal(t, tt.nnz, v.NNZ())
			if tt.dense == nil {
				assert.Empty(t, v.Dense())
			} else {
				assert.Equal(t, tt.dense, v.Dense())
			}
		})
	}
}

func TestGet(t *testing.T) {
	v := FromDense([]int{0, 7, 0, -2, 0})

	assert.Equal(t, 0, v.Get(0))
	assert.Equal(t, 7, v.Get(1))
	assert.Equal(t, 0, v.Get(2))
	assert.Equal(t, -2, v.Get(3))
	assert.Equal(t, 0, v.Get(4))

	assert.Panics(t, func() { v.Get(5) })
	assert.Panics(t, func() { v.Get(-1) })
}

func TestIterate(t *testing.T) {
	v := FromDense([]float32{0, 1.5, 0, 2.5, 3.5})

	var positions []int
	var values []float32
	v.Iterate(func(i int, x float32) bool {
		positions = append(positions, i)
		values = append(values, x)
		return true
	})

	assert.Equal(t, []int{1, 3, 4}, positions)
	assert.Equal(t, []float32{1.5, 2.5, 3.5}, values)

	// Early stop
	count := 0
	v.Iterate(func(int, float32) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestEqual(t *testing.T) {
	a := FromDense([]int{0, 1, 0, 2})
	b := FromDense([]int{0, 1, 0, 2})
	c := FromDense([]int{0, 1, 0, 3})
	d := FromDense([]int{0, 1, 0, 2, 0})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestString(t *testing.T) {
	v := FromDense([]float64{0, 1, 0})
	assert.Equal(t, "sparse.Vector(len=3 nnz=1)", v.String())
}
