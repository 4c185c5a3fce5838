package fechamento

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

// Display fallbacks for attributes the upstream left blank.
const (
	LabelSemData      = "Sem data"
	LabelSemCliente   = "Cliente não informado"
	LabelSemDesigner  = "Designer não informado"
	LabelSemVendedor  = "Vendedor não informado"
	LabelSemTipo      = "Tipo não informado"
	LabelSemEnvio     = "Envio não informado"
	LabelSemDescricao = "Item sem descrição"
)

// safeLabel returns the trimmed value or the fallback when nothing is
// left.
func safeLabel(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

// flatten expands each order into one normalized row per item. Rows
// carry the raw parsed order freight; the distribution policy assigns
// per-row shares afterwards. An order with no items still emits a
// single synthetic row so its freight and inferred discount stay
// visible in totals.
func (g *Generator) flatten(ctx context.Context, orders []domain.OrderRecord, mode domain.DateMode) []domain.NormalizedRow {
	rows := make([]domain.NormalizedRow, 0, len(orders))

	for _, order := range orders {
		frete := g.parser.Parse(order.ValorFrete)
		total := g.parser.Parse(order.TotalValue)

		data, dataLabel := "", LabelSemData
		if t, ok := referenceDate(order, mode); ok {
			data, dataLabel = t.Format(isoDate), t.Format(labelDate)
		}

		base := domain.NormalizedRow{
			OrderID:    order.ID,
			Ficha:      safeLabel(order.Numero, order.ID),
			Cliente:    safeLabel(order.Cliente, LabelSemCliente),
			Data:       data,
			DataLabel:  dataLabel,
			OrderFrete: frete,
			OrderTotal: total,
		}

		if len(order.Items) == 0 {
			row := base
			row.Designer = LabelSemDesigner
			row.Vendedor = LabelSemVendedor
			row.Tipo = LabelSemTipo
			row.FormaEnvio = LabelSemEnvio
			row.Descricao = LabelSemDescricao
			row.ValorServico = decimal.Zero
			rows = append(rows, row)
			continue
		}

		orderServico := decimal.Zero
		first := len(rows)
		for _, item := range order.Items {
			row := base
			row.Designer = safeLabel(item.Designer, LabelSemDesigner)
			row.Vendedor = safeLabel(item.Vendedor, LabelSemVendedor)
			row.Tipo = safeLabel(item.TipoProducao, LabelSemTipo)
			row.FormaEnvio = safeLabel(item.FormaEnvio, LabelSemEnvio)
			row.Descricao = safeLabel(item.Descricao, safeLabel(item.ItemName, LabelSemDescricao))
			row.ValorServico = g.resolver.Subtotal(ctx, item)
			orderServico = orderServico.Add(row.ValorServico).Round(2)
			rows = append(rows, row)
		}

		for i := first; i < len(rows); i++ {
			rows[i].OrderServico = orderServico
		}

		// Advisory only: a recorded total above items plus freight is
		// a surcharge the discount inference cannot explain.
		if total.GreaterThan(orderServico.Add(frete)) {
			zerolog.Ctx(ctx).Warn().
				Str("pedido", base.Ficha).
				Str("total", total.String()).
				Str("itens_mais_frete", orderServico.Add(frete).String()).
				Msg("total do pedido maior que itens somados ao frete")
		}
	}

	return rows
}
