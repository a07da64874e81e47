package marks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		token   string
		numeric bool
		n       int
	}{
		{name: "plain integer", raw: "85", token: "85", numeric: true, n: 85},
		{name: "negative integer", raw: "-4", token: "-4", numeric: true, n: -4},
		{name: "zero", raw: "0", token: "0", numeric: true, n: 0},
		{name: "whitespace trimmed", raw: "  90 ", token: "90", numeric: true, n: 90},
		{name: "absent token", raw: "A", token: "A", numeric: false},
		{name: "dash token", raw: "-", token: "-", numeric: false},
		{name: "empty", raw: "", token: "", numeric: false},
		{name: "blank", raw: "   ", token: "", numeric: false},
		{name: "float falls through to sentinel", raw: "12.5", token: "12.5", numeric: false},
		{name: "arbitrary token kept verbatim", raw: "AB", token: "AB", numeric: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Parse(tt.raw)
			assert.Equal(t, tt.token, v.String())
			n, ok := v.Int()
			require.Equal(t, tt.numeric, ok)
			if ok {
				assert.Equal(t, tt.n, n)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// What goes into the varchar column comes back identical.
	for _, raw := range []string{"85", "-4", "A", "-", "12.5"} {
		stored := Parse(raw).String()
		got := FromStored(stored)
		assert.Equal(t, raw, got.String())
	}
}

func TestNegativeRoundTrip(t *testing.T) {
	v := FromStored(Parse("-4").String())
	n, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, -4, n, "negative marks must not be clamped or reinterpreted")
}

func TestTotal(t *testing.T) {
	t.Run("sums numeric subjects only", func(t *testing.T) {
		total := Total(Parse("40"), Parse("A"), Parse("35"), Parse("-"))
		n, ok := total.Int()
		require.True(t, ok)
		assert.Equal(t, 75, n)
	})

	t.Run("negative marks count toward the total", func(t *testing.T) {
		total := Total(Parse("40"), Parse("-4"))
		n, ok := total.Int()
		require.True(t, ok)
		assert.Equal(t, 36, n)
	})

	t.Run("all sentinel gives empty total, not zero", func(t *testing.T) {
		total := Total(Parse("A"), Parse(""), Parse("-"))
		assert.True(t, total.IsEmpty())
		_, ok := total.Int()
		assert.False(t, ok)
	})
}
