// file: internals/features/academics/students/importer/coerce.go
package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// SafeStr trims a cell and strips the trailing ".0" a spreadsheet library
// leaves on integer cells ("9876543210.0" -> "9876543210"). Empty cells
// come back as nil.
func SafeStr(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if trimmed, ok := strings.CutSuffix(s, ".0"); ok && isIntDigits(trimmed) {
		s = trimmed
	}
	return &s
}

func isIntDigits(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SafeInt converts a cell to an int, going through float so "85.0" style
// cells still parse. Unparseable cells come back as nil.
func SafeInt(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}

// SafeInt16 is SafeInt for smallint columns; values outside the int16
// range are dropped to nil like any other unparseable cell.
func SafeInt16(raw string) *int16 {
	n := SafeInt(raw)
	if n == nil || *n < math.MinInt16 || *n > math.MaxInt16 {
		return nil
	}
	v := int16(*n)
	return &v
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-06", // excelize default for date cells
}

// ParseDate accepts the usual calendar date spellings; anything else is
// dropped to nil rather than failing the row.
func ParseDate(raw string) *datatypes.Date {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := datatypes.Date(t)
			return &d
		}
	}
	return nil
}
