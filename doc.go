// Package structdiff computes typed structural differences between two
// versions of a composite value.
//
// A diff classifies the elements of the two versions into three partitions:
// common/modified (present on both sides), added (new side only) and removed
// (old side only). The result is an immutable, queryable difference value,
// not a patch script.
//
// # Container kinds
//
// Five container kinds are supported, each with its own difference type:
//
//	Sets(a, b)                      // membership diff of two hash sets
//	Vectors(a, b)                   // positional diff of two ordered sequences
//	VectorsBy(a, b, idsA, idsB)     // identifier-aligned diff
//	Matrices(a, b)                  // positional diff over rows and columns
//	MatricesBy(a, b, rIDsA, cIDsA, rIDsB, cIDsB)
//	Records(a, b)                   // per-field diff of ordered records
//	Dicts(a, b)                     // per-key diff of string-keyed maps
//
// For ordered containers, identifiers align positions across versions:
// an identifier present on both sides marks a modified element (delta = new
// value minus old value), identifiers only in the new or old sequence mark
// added or removed elements. Without explicit identifiers, alignment is
// positional (0..n-1).
//
// # Dynamic dispatch
//
// Diff dispatches on the closed set of container variants and rejects
// mismatched kinds before any computation:
//
//	d, err := structdiff.Diff(structdiff.NewVector(a), structdiff.NewVector(b))
//
// Record fields diff recursively: numeric fields produce a numeric delta,
// fields holding containers of the same kind produce a nested difference,
// anything else fails with a TypeMismatchError.
//
// # Concurrency
//
// Every diff call is purely functional and independent; calls may run
// concurrently as long as the inputs are not mutated during the call.
// DiffAll batches independent pairs across cores.
package structdiff
