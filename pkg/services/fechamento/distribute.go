package fechamento

import (
	"github.com/shopspring/decimal"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

// distributeFrete assigns each row its freight share under the
// requested policy. Rows are mutated in place, per order, in the
// sequence the flattener emitted them.
//
//   - por_pedido: the order's first row carries the whole freight.
//   - proporcional: shares proportional to each row's subtotal; the
//     rounding remainder lands on the last row so the shares partition
//     the freight exactly.
//   - proporcional_inteiro: proportional shares rounded to whole
//     currency units, remainder on the largest-share row.
//   - atribuicao_unica: the whole freight on the order's
//     largest-subtotal row, first one on a tie.
func distributeFrete(rows []domain.NormalizedRow, policy domain.FreteDistribution) {
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && rows[end].OrderID == rows[start].OrderID {
			end++
		}
		distributeOrder(rows[start:end], policy)
		start = end
	}
}

func distributeOrder(rows []domain.NormalizedRow, policy domain.FreteDistribution) {
	frete := rows[0].OrderFrete
	for i := range rows {
		rows[i].ValorFrete = decimal.Zero
	}
	if frete.IsZero() {
		return
	}

	servico := rows[0].OrderServico
	if len(rows) == 1 || servico.IsZero() {
		// Nothing to split against; everything stays on one row.
		if policy == domain.FreteAtribuicaoUnica {
			rows[largestSubtotal(rows)].ValorFrete = frete
		} else {
			rows[0].ValorFrete = frete
		}
		return
	}

	switch policy {
	case domain.FreteProporcional:
		assigned := decimal.Zero
		for i := range rows[:len(rows)-1] {
			share := frete.Mul(rows[i].ValorServico).Div(servico).Round(2)
			rows[i].ValorFrete = share
			assigned = assigned.Add(share)
		}
		rows[len(rows)-1].ValorFrete = frete.Sub(assigned)

	case domain.FreteProporcionalInteiro:
		assigned := decimal.Zero
		for i := range rows {
			share := frete.Mul(rows[i].ValorServico).Div(servico).Round(0)
			rows[i].ValorFrete = share
			assigned = assigned.Add(share)
		}
		// Whole-unit rounding leaves a remainder; park it on the row
		// with the largest share.
		if rest := frete.Sub(assigned); !rest.IsZero() {
			i := largestSubtotal(rows)
			rows[i].ValorFrete = rows[i].ValorFrete.Add(rest)
		}

	case domain.FreteAtribuicaoUnica:
		rows[largestSubtotal(rows)].ValorFrete = frete

	default: // por_pedido
		rows[0].ValorFrete = frete
	}
}

func largestSubtotal(rows []domain.NormalizedRow) int {
	best := 0
	for i := 1; i < len(rows); i++ {
		if rows[i].ValorServico.GreaterThan(rows[best].ValorServico) {
			best = i
		}
	}
	return best
}
