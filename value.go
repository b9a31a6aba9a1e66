package lingodex

import "time"

// ValueKind discriminates the closed set of criterion value shapes.
type ValueKind int

// Criterion value kinds.
const (
	KindEmpty ValueKind = iota
	KindText
	KindInt
	KindIntList
	KindTime
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindInt:
		return "integer"
	case KindIntList:
		return "integer_list"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is a criterion value: a closed union over text, integer,
// integer-list and time shapes. The zero Value is empty; empty values are
// dropped from criteria before query construction.
type Value struct {
	kind ValueKind
	text string
	n    int64
	list []*int64
	ts   time.Time
}

// Text creates a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int creates an integer value.
func Int(n int64) Value { return Value{kind: KindInt, n: n} }

// Ints creates an integer-list value: the field matches any listed value.
func Ints(ns ...int64) Value {
	list := make([]*int64, len(ns))
	for i := range ns {
		n := ns[i]
		list[i] = &n
	}
	return Value{kind: KindIntList, list: list}
}

// IntRefs creates an integer-list value whose nil elements are skipped
// during query construction.
func IntRefs(ns []*int64) Value {
	return Value{kind: KindIntList, list: append([]*int64(nil), ns...)}
}

// Time creates a time value. Time criteria are accepted but contribute no
// query clause; see Search.SearchBy.
func Time(t time.Time) Value { return Value{kind: KindTime, ts: t} }

// Kind returns the value's shape discriminator.
func (v Value) Kind() ValueKind { return v.kind }

// IsZero reports whether the value is empty: blank text, a list with no
// non-nil elements, a zero time, or the zero Value.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindText:
		return v.text == ""
	case KindInt:
		return false
	case KindIntList:
		for _, n := range v.list {
			if n != nil {
				return false
			}
		}
		return true
	case KindTime:
		return v.ts.IsZero()
	case KindEmpty:
		return true
	default:
		// Unknown kinds are not empty: they must reach the builder and
		// fail fast there instead of being silently dropped.
		return false
	}
}

// Criterion pairs a field name with a criterion value.
type Criterion struct {
	Field string
	Value Value
}

// Criteria is an ordered list of criteria. Order is preserved through
// query construction so composed queries are deterministic.
type Criteria []Criterion

// prune drops criteria with empty values, keeping order.
func (c Criteria) prune() Criteria {
	out := make(Criteria, 0, len(c))
	for _, cr := range c {
		if !cr.Value.IsZero() {
			out = append(out, cr)
		}
	}
	return out
}
