package hash

import (
	"encoding/binary"
	"hash/crc32"
	"math"
)

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Checksum computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// String computes the checksum of a string.
func String(s string) uint32 {
	return Checksum([]byte(s))
}

// Digest accumulates typed values into a CRC32-Castagnoli checksum.
// The zero value is ready to use. The result depends on write order; use
// Unordered for set-like collections without a defined iteration order.
type Digest struct {
	sum uint32
	buf [8]byte
}

// Sum32 returns the accumulated checksum.
func (d *Digest) Sum32() uint32 { return d.sum }

// WriteBytes folds raw bytes into the checksum.
func (d *Digest) WriteBytes(p []byte) {
	d.sum = crc32.Update(d.sum, crc32cTable, p)
}

// WriteString folds a string into the checksum.
func (d *Digest) WriteString(s string) {
	d.WriteBytes([]byte(s))
}

// WriteUint32 folds a 32-bit value into the checksum.
func (d *Digest) WriteUint32(x uint32) {
	binary.LittleEndian.PutUint32(d.buf[:4], x)
	d.WriteBytes(d.buf[:4])
}

// WriteUint64 folds a 64-bit value into the checksum.
func (d *Digest) WriteUint64(x uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], x)
	d.WriteBytes(d.buf[:])
}

// WriteFloat64 folds a float64 into the checksum via its IEEE-754 bits.
func (d *Digest) WriteFloat64(f float64) {
	d.WriteUint64(math.Float64bits(f))
}

// Unordered combines element checksums independent of insertion order.
// Used for set-like partitions where iteration order is not defined.
type Unordered struct {
	acc uint32
}

// Add mixes one element checksum into the combination.
func (u *Unordered) Add(h uint32) {
	u.acc += h
}

// Sum32 returns the order-independent combination.
func (u *Unordered) Sum32() uint32 { return u.acc }
