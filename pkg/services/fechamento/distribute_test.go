package fechamento

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

func TestDistributeFrete_PorPedido(t *testing.T) {
	rows := []domain.NormalizedRow{
		row("A", 100, 50, 300, 350),
		row("A", 200, 50, 300, 350),
	}

	distributeFrete(rows, domain.FretePorPedido)

	assert.Equal(t, "50.00", rows[0].ValorFrete.StringFixed(2))
	assert.Equal(t, "0.00", rows[1].ValorFrete.StringFixed(2))
}

func TestDistributeFrete_ProportionalPartitionsExactly(t *testing.T) {
	rows := []domain.NormalizedRow{
		row("A", 100, 10, 150, 160),
		row("A", 50, 10, 150, 160),
	}

	distributeFrete(rows, domain.FreteProporcional)

	assert.Equal(t, "6.67", rows[0].ValorFrete.StringFixed(2))
	assert.Equal(t, "3.33", rows[1].ValorFrete.StringFixed(2))

	sum := rows[0].ValorFrete.Add(rows[1].ValorFrete)
	assert.Equal(t, "10.00", sum.StringFixed(2))
}

func TestDistributeFrete_ProportionalZeroServicoFallsBackToFirstRow(t *testing.T) {
	rows := []domain.NormalizedRow{
		row("A", 0, 25, 0, 0),
		row("A", 0, 25, 0, 0),
	}

	distributeFrete(rows, domain.FreteProporcional)

	assert.Equal(t, "25.00", rows[0].ValorFrete.StringFixed(2))
	assert.Equal(t, "0.00", rows[1].ValorFrete.StringFixed(2))
}

func TestDistributeFrete_ProporcionalInteiro(t *testing.T) {
	rows := []domain.NormalizedRow{
		row("A", 100, 10, 150, 160),
		row("A", 50, 10, 150, 160),
	}

	distributeFrete(rows, domain.FreteProporcionalInteiro)

	// 6.67 rounds to 7, 3.33 rounds to 3; together they still carry
	// the full freight.
	sum := rows[0].ValorFrete.Add(rows[1].ValorFrete)
	assert.Equal(t, "10.00", sum.StringFixed(2))
	assert.True(t, rows[0].ValorFrete.IsInteger() || rows[1].ValorFrete.IsInteger())
}

func TestDistributeFrete_ProporcionalInteiroRemainder(t *testing.T) {
	rows := []domain.NormalizedRow{
		row("A", 50, 11, 100, 120),
		row("A", 50, 11, 100, 120),
	}

	distributeFrete(rows, domain.FreteProporcionalInteiro)

	sum := rows[0].ValorFrete.Add(rows[1].ValorFrete)
	assert.Equal(t, "11.00", sum.StringFixed(2))
}

func TestDistributeFrete_AtribuicaoUnica(t *testing.T) {
	rows := []domain.NormalizedRow{
		row("A", 50, 30, 250, 280),
		row("A", 200, 30, 250, 280),
	}

	distributeFrete(rows, domain.FreteAtribuicaoUnica)

	assert.Equal(t, "0.00", rows[0].ValorFrete.StringFixed(2))
	assert.Equal(t, "30.00", rows[1].ValorFrete.StringFixed(2))
}

func TestDistributeFrete_AtribuicaoUnicaTieTakesFirst(t *testing.T) {
	rows := []domain.NormalizedRow{
		row("A", 100, 30, 200, 230),
		row("A", 100, 30, 200, 230),
	}

	distributeFrete(rows, domain.FreteAtribuicaoUnica)

	assert.Equal(t, "30.00", rows[0].ValorFrete.StringFixed(2))
	assert.Equal(t, "0.00", rows[1].ValorFrete.StringFixed(2))
}
