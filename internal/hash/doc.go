// Package hash provides the CRC32-Castagnoli hashing used to derive stable
// checksums for difference values.
//
// CRC32C was chosen for its hardware acceleration on x86 (SSE4.2) and ARM
// (CRC extension); Go's crc32 package picks the hardware path automatically.
// The Digest type folds typed fields in a fixed order; Unordered combines
// per-element checksums for set-like partitions whose iteration order is
// implementation-defined.
package hash
