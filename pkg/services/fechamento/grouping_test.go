package fechamento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

func namedRow(orderID, designer, cliente string, servico float64) domain.NormalizedRow {
	r := row(orderID, servico, 0, servico, 0)
	r.Designer = designer
	r.Cliente = cliente
	r.Descricao = "item"
	return r
}

func TestGroup_OneLevelKeepsFirstSeenOrder(t *testing.T) {
	rows := []domain.NormalizedRow{
		namedRow("1", "Bruna", "ACME", 10),
		namedRow("2", "André", "ACME", 20),
		namedRow("3", "Bruna", "Beta", 30),
	}

	groups := group(rows, reportRegistry[domain.SinteticoDesigner], domain.FretePorPedido)

	require.Len(t, groups, 2)
	assert.Equal(t, "bruna", groups[0].Key)
	assert.Equal(t, "Bruna", groups[0].Label)
	assert.Equal(t, "andre", groups[1].Key)

	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "40.00", groups[0].Subtotal.ValorServico.StringFixed(2))
	assert.Equal(t, "20.00", groups[1].Subtotal.ValorServico.StringFixed(2))
}

func TestGroup_TwoLevelNestsSubgroups(t *testing.T) {
	rows := []domain.NormalizedRow{
		namedRow("1", "Bruna", "ACME", 10),
		namedRow("2", "Bruna", "Beta", 20),
		namedRow("3", "André", "ACME", 5),
	}

	groups := group(rows, reportRegistry[domain.AnaliticoDesignerCliente], domain.FretePorPedido)

	require.Len(t, groups, 2)
	bruna := groups[0]
	require.Len(t, bruna.Subgroups, 2)
	assert.Equal(t, "acme", bruna.Subgroups[0].Key)
	assert.Equal(t, "beta", bruna.Subgroups[1].Key)

	// The top-level subtotal covers the union of its subgroup rows.
	assert.Equal(t, "30.00", bruna.Subtotal.ValorServico.StringFixed(2))
	assert.Equal(t, "10.00", bruna.Subgroups[0].Subtotal.ValorServico.StringFixed(2))
	assert.Equal(t, "20.00", bruna.Subgroups[1].Subtotal.ValorServico.StringFixed(2))
}

func TestGroup_SubtotalMatchesCalculatorOverMemberRows(t *testing.T) {
	rows := []domain.NormalizedRow{
		row("A", 100, 50, 300, 350),
		row("A", 200, 50, 300, 350),
	}
	rows[0].Designer = "Bruna"
	rows[1].Designer = "Bruna"
	distributeFrete(rows, domain.FretePorPedido)

	groups := group(rows, reportRegistry[domain.SinteticoDesigner], domain.FretePorPedido)

	require.Len(t, groups, 1)
	expected := ComputeTotals(rows, domain.FretePorPedido)
	assert.True(t, groups[0].Subtotal.ValorFrete.Equal(expected.ValorFrete))
	assert.True(t, groups[0].Subtotal.ValorServico.Equal(expected.ValorServico))
}

func TestReportTypes_CoversRegistry(t *testing.T) {
	types := ReportTypes()
	assert.Len(t, types, len(reportRegistry))
	assert.Contains(t, types, domain.SinteticoData)
	assert.Contains(t, types, domain.AnaliticoEnvioTipo)
}
