package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestDeterministic(t *testing.T) {
	var a, b Digest
	for _, d := range []*Digest{&a, &b} {
		d.WriteString("label")
		d.WriteUint64(42)
		d.WriteFloat64(1.5)
		d.WriteUint32(7)
	}
	assert.Equal(t, a.Sum32(), b.Sum32())
}

func TestDigestOrderSensitive(t *testing.T) {
	var a, b Digest
	a.WriteString("x")
	a.WriteString("y")
	b.WriteString("y")
	b.WriteString("x")
	assert.NotEqual(t, a.Sum32(), b.Sum32())
}

func TestUnorderedOrderIndependent(t *testing.T) {
	var a, b Unordered
	a.Add(String("x"))
	a.Add(String("y"))
	b.Add(String("y"))
	b.Add(String("x"))
	assert.Equal(t, a.Sum32(), b.Sum32())
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, Checksum([]byte("abc")), String("abc"))
	assert.NotEqual(t, String("abc"), String("abd"))
}
