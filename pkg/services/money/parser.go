// Package money normalizes the monetary values the order system emits.
// Upstream stores them untyped: sometimes a number, sometimes a
// Brazilian-formatted string ("1.500,00"), sometimes a US-formatted one
// ("1500.00"), sometimes null. Parse folds all of them into a canonical
// non-negative decimal with two fractional digits.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Parser converts ambiguous monetary representations into canonical
// decimals. A nil cache disables memoization; parsing stays correct,
// only repeated lookups get slower.
type Parser struct {
	cache *Cache
}

func NewParser(cache *Cache) *Parser {
	return &Parser{cache: cache}
}

// Parse returns the canonical value of v: finite, rounded to 2
// decimals, never negative. Null, unparseable or non-finite input
// yields zero. Values at or above 1000 keep their magnitude —
// Parse(1000) is 1000, never 10.
func (p *Parser) Parse(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return clamp(n)
	case float64:
		return parseFloat(n)
	case float32:
		return parseFloat(float64(n))
	case int:
		return clamp(decimal.NewFromInt(int64(n)))
	case int64:
		return clamp(decimal.NewFromInt(n))
	case json.Number:
		return p.ParseString(n.String())
	case string:
		return p.ParseString(n)
	default:
		return p.ParseString(fmt.Sprint(v))
	}
}

// ParseString normalizes a monetary string. The separator heuristics
// are a fixed decision table; known ambiguous edges (a lone dot with
// three trailing digits is always read as a thousands separator) are
// deliberate and must not be "improved" silently.
func (p *Parser) ParseString(s string) decimal.Decimal {
	if p.cache != nil {
		if d, ok := p.cache.get(s); ok {
			return d
		}
	}

	d := normalizeString(s)

	if p.cache != nil {
		p.cache.put(s, d)
	}
	return d
}

func normalizeString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// Brazilian: dots are thousands separators, comma is decimal.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	case hasDot:
		s = disambiguateDots(s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return clamp(d)
}

// disambiguateDots decides whether dots in a comma-free string are
// thousands separators or a decimal point. Multiple dots, or a single
// dot followed by exactly three digits, read as thousands separators;
// anything else reads as a decimal point.
func disambiguateDots(s string) string {
	if strings.Count(s, ".") > 1 {
		return strings.ReplaceAll(s, ".", "")
	}
	idx := strings.LastIndex(s, ".")
	if len(s)-idx-1 == 3 {
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}

func parseFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return clamp(decimal.NewFromFloat(f))
}

func clamp(d decimal.Decimal) decimal.Decimal {
	d = d.Round(2)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
