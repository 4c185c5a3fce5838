package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse_NumericInput(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil is zero", nil, "0.00"},
		{"int keeps magnitude", 1000, "1000.00"},
		{"large int never divided by 100", 1500, "1500.00"},
		{"float rounds to cents", 10.456, "10.46"},
		{"negative clamps to zero", -12.5, "0.00"},
		{"int64", int64(250), "250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Parse(tt.input).StringFixed(2))
		})
	}
}

func TestParse_StringFormats(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "0.00"},
		{"blank", "   ", "0.00"},
		{"unparseable", "abc", "0.00"},
		{"plain integer", "1500", "1500.00"},
		{"brazilian full", "1.500,00", "1500.00"},
		{"brazilian comma only", "250,75", "250.75"},
		{"brazilian with symbol", "R$ 1.250,50", "1250.50"},
		{"us decimal above thousand", "1500.00", "1500.00"},
		{"us decimal below thousand", "999.99", "999.99"},
		{"single dot three digits is thousands", "1.500", "1500.00"},
		{"multiple dots are thousands", "10.500.250", "10500250.00"},
		{"comma decimal single digit", "1500,5", "1500.50"},
		{"negative string clamps", "-45,90", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Parse(tt.input).StringFixed(2))
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	p := NewParser(NewCache(0))

	inputs := []any{1000, "1.500,00", "999.99", "abc", nil, 10.456, "R$ 88,80"}
	for _, in := range inputs {
		once := p.Parse(in)
		twice := p.Parse(once)
		assert.True(t, once.Equal(twice), "Parse(Parse(%v)) = %s, want %s", in, twice, once)
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	p := NewParser(nil)

	for _, in := range []string{"1.500,00", "0,00", "999,99", "12.345,67"} {
		parsed := p.Parse(in)
		assert.True(t, parsed.Equal(p.Parse(Format(parsed))),
			"round trip changed %s", in)
	}
}

func TestFormat_PtBR(t *testing.T) {
	assert.Equal(t, "1.500,00", Format(decimal.NewFromInt(1500)))
	assert.Equal(t, "0,00", Format(decimal.Zero))
	assert.Equal(t, "12.345,67", Format(decimal.NewFromFloat(12345.67)))
}

func TestCache_WholesaleClear(t *testing.T) {
	cache := NewCache(2)
	p := NewParser(cache)

	p.Parse("1,00")
	p.Parse("2,00")
	assert.Equal(t, 2, cache.Len())

	// The third insert trips the capacity and drops everything first.
	p.Parse("3,00")
	assert.Equal(t, 1, cache.Len())

	// Values stay correct regardless of cache churn.
	assert.Equal(t, "1.00", p.Parse("1,00").StringFixed(2))
}
