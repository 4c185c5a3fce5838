package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Format renders d the way the report screens show money: thousands
// separated by dots, comma as decimal mark, always two fractional
// digits ("1.500,00").
func Format(d decimal.Decimal) string {
	return ptBR.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
