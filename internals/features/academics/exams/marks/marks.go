// file: internals/features/academics/exams/marks/marks.go
package marks

import (
	"strconv"
	"strings"
)

// Well-known sentinel tokens. Anything non-numeric is stored verbatim, so
// these are conventions, not an enum — "AB" or "NA" from an upload survive
// unchanged.
const (
	Absent        = "A"
	NotApplicable = ""
	Dash          = "-"
)

// Value is a single mark cell: a strict integer (negatives allowed) or a
// verbatim sentinel token. The mark columns are varchar(20) precisely so
// this round-trips byte-for-byte through storage.
type Value struct {
	raw string
}

// Parse canonicalizes raw input: trim, keep the rest verbatim. It never
// fails — "12.5" and other non-integer tokens simply become sentinels.
func Parse(raw string) Value {
	return Value{raw: strings.TrimSpace(raw)}
}

// FromStored wraps a value read back from the store without re-trimming.
func FromStored(s string) Value {
	return Value{raw: s}
}

// FromInt builds a numeric Value.
func FromInt(n int) Value {
	return Value{raw: strconv.Itoa(n)}
}

// String returns the canonical token, byte-for-byte what gets stored.
func (v Value) String() string { return v.raw }

// IsEmpty reports an empty cell (student absent from the exam entry, or a
// not-applicable subject on a mock test).
func (v Value) IsEmpty() bool { return v.raw == "" }

// Int returns the integer value and true when the token parses as a strict
// base-10 integer. Sentinels and float-looking tokens return false.
func (v Value) Int() (int, bool) {
	n, err := strconv.Atoi(v.raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsNumeric reports whether the token is a strict integer.
func (v Value) IsNumeric() bool {
	_, ok := v.Int()
	return ok
}

// Total sums the numeric values only. When no value is numeric the result
// is the NotApplicable sentinel, not zero — a mock test where the student
// skipped every subject has no total.
func Total(vs ...Value) Value {
	sum := 0
	numeric := false
	for _, v := range vs {
		if n, ok := v.Int(); ok {
			sum += n
			numeric = true
		}
	}
	if !numeric {
		return Value{raw: NotApplicable}
	}
	return FromInt(sum)
}
