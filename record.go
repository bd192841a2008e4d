package structdiff

import (
	"fmt"
	"reflect"
	"time"

	"golang.org/x/exp/maps"

	"github.com/hupe1980/structdiff/align"
	"github.com/hupe1980/structdiff/internal/hash"
)

// Record is an explicit ordered mapping from field name to value.
// Insertion order is the documented iteration order. Use NewRecord; the
// zero value is not usable.
type Record struct {
	names  []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set sets a field and returns the record for chaining. A new name is
// appended to the field order; overwriting keeps the original position.
func (r *Record) Set(name string, value any) *Record {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
	return r
}

// Get returns the named field value.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in insertion order. Read-only.
func (r *Record) Names() []string { return r.names }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.names) }

// Kind implements Container.
func (r *Record) Kind() Kind { return KindRecord }

func (r *Record) diffContainer(other Container, o *options) (Difference, error) {
	w, ok := other.(*Record)
	if !ok {
		return nil, fmt.Errorf("%w: expected record, got %T", ErrInvalidArgument, other)
	}
	fd, err := diffFields(r.names, w.names, r.values, w.values, o)
	if err != nil {
		return nil, err
	}
	return &RecordDifference{fieldDifference: fd}, nil
}

// Dict is a dynamic string-keyed container. Its key domain plays the role
// a record's field schema plays for Records; iteration order is
// implementation-defined.
type Dict map[string]any

// Kind implements Container.
func (d Dict) Kind() Kind { return KindDict }

func (d Dict) diffContainer(other Container, o *options) (Difference, error) {
	w, ok := other.(Dict)
	if !ok {
		return nil, fmt.Errorf("%w: expected dict, got %T", ErrInvalidArgument, other)
	}
	fd, err := diffFields(maps.Keys(d), maps.Keys(w), d, w, o)
	if err != nil {
		return nil, err
	}
	return &DictDifference{fieldDifference: fd}, nil
}

// Records diffs two records over their field-name domains. Per common
// field, the modified entry is a float64 delta (new minus old) when both
// sides are numeric, or a nested Difference when both sides hold
// containers of the same kind; anything else fails with a
// TypeMismatchError. Added and removed fields are copied verbatim.
func Records(a, b *Record, optFns ...Option) (*RecordDifference, error) {
	o := applyOptions(optFns)
	start := time.Now()
	fd, err := diffFields(a.names, b.names, a.values, b.values, o)
	finish(o, KindRecord, start, err)
	if err != nil {
		return nil, err
	}
	return &RecordDifference{fieldDifference: fd}, nil
}

// Dicts diffs two dicts over their key domains, with the same per-field
// semantics as Records.
func Dicts(a, b Dict, optFns ...Option) (*DictDifference, error) {
	o := applyOptions(optFns)
	start := time.Now()
	fd, err := diffFields(maps.Keys(a), maps.Keys(b), a, b, o)
	finish(o, KindDict, start, err)
	if err != nil {
		return nil, err
	}
	return &DictDifference{fieldDifference: fd}, nil
}

// fieldDifference is the partition shape shared by record and dict diffs.
type fieldDifference struct {
	modified map[string]any
	added    map[string]any
	removed  map[string]any
}

func diffFields(aNames, bNames []string, aVals, bVals map[string]any, o *options) (fieldDifference, error) {
	p, err := align.Identifiers(aNames, bNames)
	if err != nil {
		return fieldDifference{}, &IdentifierError{Side: "field", Reason: "not unique within one side", cause: err}
	}

	fd := fieldDifference{
		modified: make(map[string]any, len(p.Modified)),
		added:    make(map[string]any, len(p.Added)),
		removed:  make(map[string]any, len(p.Removed)),
	}

	// Fail-fast: a single incompatible field aborts the whole diff before
	// any partial result escapes.
	for _, name := range p.Modified {
		delta, err := fieldDelta(name, aVals[name], bVals[name], o)
		if err != nil {
			return fieldDifference{}, err
		}
		fd.modified[name] = delta
	}
	for _, name := range p.Added {
		fd.added[name] = bVals[name]
	}
	for _, name := range p.Removed {
		fd.removed[name] = aVals[name]
	}

	return fd, nil
}

// fieldDelta computes the modified entry for a field present on both
// sides: a float64 delta when both values are numeric, a nested Difference
// when both are containers of the same kind.
func fieldDelta(name string, oldVal, newVal any, o *options) (any, error) {
	if x, ok := toFloat(oldVal); ok {
		y, ok := toFloat(newVal)
		if !ok {
			return nil, typeMismatch(name, oldVal, newVal)
		}
		return y - x, nil
	}

	ca, okA := oldVal.(Container)
	cb, okB := newVal.(Container)
	if !okA || !okB {
		return nil, typeMismatch(name, oldVal, newVal)
	}
	if ca.Kind() != cb.Kind() {
		return nil, typeMismatch(name, oldVal, newVal)
	}

	return ca.diffContainer(cb, o)
}

func typeMismatch(name string, oldVal, newVal any) error {
	return &TypeMismatchError{
		Field:   name,
		OldType: fmt.Sprintf("%T", oldVal),
		NewType: fmt.Sprintf("%T", newVal),
	}
}

// toFloat widens the builtin numeric types to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// Modified returns, per common field, the float64 delta or nested
// Difference. Read-only.
func (d *fieldDifference) Modified() map[string]any { return d.modified }

// Added returns the fields present only on the new side, verbatim. Read-only.
func (d *fieldDifference) Added() map[string]any { return d.added }

// Removed returns the fields present only on the old side, verbatim. Read-only.
func (d *fieldDifference) Removed() map[string]any { return d.removed }

func (d *fieldDifference) equal(o *fieldDifference) bool {
	return equalFieldMap(d.modified, o.modified) &&
		equalFieldMap(d.added, o.added) &&
		equalFieldMap(d.removed, o.removed)
}

func equalFieldMap(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for name, av := range a {
		bv, ok := b[name]
		if !ok || !equalFieldValue(av, bv) {
			return false
		}
	}
	return true
}

// equalFieldValue compares two field entries: nested differences via their
// own Equal, everything else (numeric deltas and verbatim user values) via
// deep equality.
func equalFieldValue(a, b any) bool {
	if da, ok := a.(Difference); ok {
		db, ok := b.(Difference)
		return ok && da.Equal(db)
	}
	return reflect.DeepEqual(a, b)
}

func (d *fieldDifference) hash(label string) uint32 {
	var dg hash.Digest
	dg.WriteString(label)
	dg.WriteUint32(hashFieldMap(d.modified))
	dg.WriteUint32(hashFieldMap(d.added))
	dg.WriteUint32(hashFieldMap(d.removed))
	return dg.Sum32()
}

// hashFieldMap combines per-field checksums independent of map order.
func hashFieldMap(m map[string]any) uint32 {
	var u hash.Unordered
	for name, v := range m {
		var dg hash.Digest
		dg.WriteString(name)
		switch x := v.(type) {
		case Difference:
			dg.WriteUint32(x.Hash())
		case float64:
			dg.WriteFloat64(x)
		default:
			dg.WriteString(fmt.Sprint(x))
		}
		u.Add(dg.Sum32())
	}
	return u.Sum32()
}

func (d *fieldDifference) summary(kind string) string {
	return fmt.Sprintf("%s(modified=%d added=%d removed=%d)",
		kind, len(d.modified), len(d.added), len(d.removed))
}

// RecordDifference partitions two records by field name.
type RecordDifference struct {
	fieldDifference
}

// Kind implements Difference.
func (d *RecordDifference) Kind() Kind { return KindRecord }

// Equal implements Difference.
func (d *RecordDifference) Equal(other Difference) bool {
	o, ok := other.(*RecordDifference)
	return ok && d.fieldDifference.equal(&o.fieldDifference)
}

// Hash implements Difference.
func (d *RecordDifference) Hash() uint32 { return d.hash("record") }

// String implements Difference.
func (d *RecordDifference) String() string { return d.summary("RecordDifference") }

// DictDifference partitions two dicts by key.
type DictDifference struct {
	fieldDifference
}

// Kind implements Difference.
func (d *DictDifference) Kind() Kind { return KindDict }

// Equal implements Difference.
func (d *DictDifference) Equal(other Difference) bool {
	o, ok := other.(*DictDifference)
	return ok && d.fieldDifference.equal(&o.fieldDifference)
}

// Hash implements Difference.
func (d *DictDifference) Hash() uint32 { return d.hash("dict") }

// String implements Difference.
func (d *DictDifference) String() string { return d.summary("DictDifference") }

var (
	_ Container  = (*Record)(nil)
	_ Container  = Dict(nil)
	_ Difference = (*RecordDifference)(nil)
	_ Difference = (*DictDifference)(nil)
)
