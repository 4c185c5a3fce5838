// Package resolver derives the effective quantity and subtotal of a
// single order item from its possibly-present, possibly-inconsistent
// fields.
package resolver

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
	"github.com/grafica-tools/fechamento/pkg/services/money"
)

// quantityField is one production-type specific counter an item may
// carry instead of the generic quantity. The list is closed on
// purpose: adding a production type means adding an accessor here, not
// scanning field names at runtime.
type quantityField struct {
	name string
	get  func(domain.ItemRecord) *int
}

var quantityFields = []quantityField{
	{"quantidade_paineis", func(i domain.ItemRecord) *int { return i.QuantidadePaineis }},
	{"quantidade_mochilas", func(i domain.ItemRecord) *int { return i.QuantidadeMochilas }},
	{"quantidade_totem", func(i domain.ItemRecord) *int { return i.QuantidadeTotem }},
	{"quantidade_lonas", func(i domain.ItemRecord) *int { return i.QuantidadeLonas }},
	{"quantidade_adesivos", func(i domain.ItemRecord) *int { return i.QuantidadeAdesivos }},
	{"quantidade_banners", func(i domain.ItemRecord) *int { return i.QuantidadeBanners }},
	{"quantidade_impressao_3d", func(i domain.ItemRecord) *int { return i.QuantidadeImpressao3D }},
}

// subtotalTolerance is how far a stored subtotal may drift from
// quantity × unit price before it is treated as stale.
var subtotalTolerance = decimal.NewFromFloat(0.01)

// Resolver computes item subtotals. It shares the caller's monetary
// parser so string prices hit the same memoization cache.
type Resolver struct {
	parser *money.Parser
}

func NewResolver(parser *money.Parser) *Resolver {
	return &Resolver{parser: parser}
}

// EffectiveQuantity returns the item's quantity: the generic field when
// it is a positive finite number, otherwise the first positive
// production-type counter, otherwise 1.
func (r *Resolver) EffectiveQuantity(item domain.ItemRecord) decimal.Decimal {
	if q := item.Quantity; q != nil && !math.IsNaN(*q) && !math.IsInf(*q, 0) && *q > 0 {
		return decimal.NewFromFloat(*q)
	}
	for _, f := range quantityFields {
		if n := f.get(item); n != nil && *n > 0 {
			return decimal.NewFromInt(int64(*n))
		}
	}
	return decimal.NewFromInt(1)
}

// Subtotal resolves the item to exactly one non-negative subtotal,
// rounded to 2 decimals. The priority chain: a stored subtotal (unless
// it disagrees with quantity × unit price by more than a cent, in which
// case the recomputed value wins), then quantity × unit price, then
// quantity × parsed valor_unitario, then zero with a diagnostic.
func (r *Resolver) Subtotal(ctx context.Context, item domain.ItemRecord) decimal.Decimal {
	qty := r.EffectiveQuantity(item)

	if s := item.Subtotal; s != nil && !math.IsNaN(*s) && !math.IsInf(*s, 0) && *s > 0 {
		stored := decimal.NewFromFloat(*s).Round(2)
		if u := item.UnitPrice; u != nil && !math.IsNaN(*u) && !math.IsInf(*u, 0) && *u >= 0 {
			recomputed := qty.Mul(decimal.NewFromFloat(*u)).Round(2)
			if stored.Sub(recomputed).Abs().GreaterThan(subtotalTolerance) {
				return recomputed
			}
		}
		return stored
	}

	if u := item.UnitPrice; u != nil && !math.IsNaN(*u) && !math.IsInf(*u, 0) && *u >= 0 {
		return qty.Mul(decimal.NewFromFloat(*u)).Round(2)
	}

	if parsed := r.parser.Parse(item.ValorUnitario); parsed.IsPositive() {
		return qty.Mul(parsed).Round(2)
	}

	zerolog.Ctx(ctx).Warn().
		Str("item", itemLabel(item)).
		Msg("item sem valor resolvível, subtotal assumido como zero")
	return decimal.Zero
}

func itemLabel(item domain.ItemRecord) string {
	if item.Descricao != "" {
		return item.Descricao
	}
	return item.ItemName
}
