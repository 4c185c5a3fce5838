package fechamento

import (
	"github.com/shopspring/decimal"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

// ComputeTotals aggregates a row subset into freight, service and
// inferred-discount figures. Every accumulation rounds to 2 decimals.
//
// Under por_pedido the freight counts once per distinct order in the
// subset, no matter how many of the order's rows are present; under
// the proportional policies each row already carries its own exact
// share and the shares are summed directly. Service always sums every
// row's subtotal.
//
// The discount is inferred once per distinct order as
// max(0, order item total + freight − charged total), and only orders
// with a positive charged total participate. Desconto and ValorLiquido
// appear only when the aggregate discount is positive.
func ComputeTotals(rows []domain.NormalizedRow, policy domain.FreteDistribution) domain.ReportTotals {
	frete := decimal.Zero
	servico := decimal.Zero
	desconto := decimal.Zero
	seen := make(map[string]struct{})

	for _, row := range rows {
		servico = servico.Add(row.ValorServico).Round(2)

		if policy != domain.FretePorPedido {
			frete = frete.Add(row.ValorFrete).Round(2)
		}

		if _, ok := seen[row.OrderID]; ok {
			continue
		}
		seen[row.OrderID] = struct{}{}

		if policy == domain.FretePorPedido {
			frete = frete.Add(row.OrderFrete).Round(2)
		}
		if row.OrderTotal.IsPositive() {
			gap := row.OrderServico.Add(row.OrderFrete).Sub(row.OrderTotal).Round(2)
			if gap.IsPositive() {
				desconto = desconto.Add(gap).Round(2)
			}
		}
	}

	totals := domain.ReportTotals{
		ValorFrete:   frete,
		ValorServico: servico,
	}
	if desconto.IsPositive() {
		liquido := frete.Add(servico).Sub(desconto).Round(2)
		totals.Desconto = &desconto
		totals.ValorLiquido = &liquido
	}
	return totals
}
