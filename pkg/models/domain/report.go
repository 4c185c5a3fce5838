package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportType selects the grouping dimension(s) of a fechamento report.
type ReportType string

const (
	SinteticoDesigner ReportType = "sintetico_designer"
	SinteticoCliente  ReportType = "sintetico_cliente"
	SinteticoVendedor ReportType = "sintetico_vendedor"
	SinteticoData     ReportType = "sintetico_data"
	SinteticoEnvio    ReportType = "sintetico_envio"
	SinteticoTipo     ReportType = "sintetico_tipo"

	AnaliticoDesignerCliente  ReportType = "analitico_designer_cliente"
	AnaliticoClienteDesigner  ReportType = "analitico_cliente_designer"
	AnaliticoVendedorDesigner ReportType = "analitico_vendedor_designer"
	AnaliticoDesignerVendedor ReportType = "analitico_designer_vendedor"
	AnaliticoClienteTipo      ReportType = "analitico_cliente_tipo"
	AnaliticoDesignerTipo     ReportType = "analitico_designer_tipo"
	AnaliticoEnvioTipo        ReportType = "analitico_envio_tipo"
)

// DateMode selects which order date anchors the period filter.
type DateMode string

const (
	DateModeEntrada DateMode = "entrada"
	DateModeEntrega DateMode = "entrega"
	DateModeAuto    DateMode = "auto"
)

// FreteDistribution selects how an order's single freight charge is
// spread over its item rows.
type FreteDistribution string

const (
	FretePorPedido           FreteDistribution = "por_pedido"
	FreteProporcional        FreteDistribution = "proporcional"
	FreteProporcionalInteiro FreteDistribution = "proporcional_inteiro"
	FreteAtribuicaoUnica     FreteDistribution = "atribuicao_unica"
)

// ReportRequest is the validated, typed form of a report request.
// Dates are ISO `2006-01-02` strings, empty when the bound is open.
type ReportRequest struct {
	Type              ReportType
	StartDate         string
	EndDate           string
	DateMode          DateMode
	Status            OrderStatus
	Cliente           string
	Vendedor          string
	FreteDistribution FreteDistribution
}

// NormalizedRow is one item-order pair with every report-relevant field
// resolved to a canonical type. Rows are owned by a single report
// invocation and never shared.
type NormalizedRow struct {
	OrderID    string
	Ficha      string
	Cliente    string
	Designer   string
	Vendedor   string
	Tipo       string
	FormaEnvio string
	Data       string // canonical ISO date, "" when unknown
	DataLabel  string
	Descricao  string

	ValorFrete   decimal.Decimal // freight attributed to this row by the active policy
	ValorServico decimal.Decimal // resolved item subtotal

	// Order-level figures, repeated on every row of the order. The
	// totals calculator needs them to de-duplicate freight and infer
	// discounts per distinct order regardless of how the rows were
	// partitioned into groups.
	OrderFrete   decimal.Decimal
	OrderServico decimal.Decimal
	OrderTotal   decimal.Decimal
}

// ReportRow is the leaf projection of a NormalizedRow shown in a group.
type ReportRow struct {
	Ficha        string
	Descricao    string
	ValorFrete   decimal.Decimal
	ValorServico decimal.Decimal
}

// ReportTotals aggregates a row subset. Desconto and ValorLiquido are
// nil unless a positive discount was inferred for at least one
// contributing order.
type ReportTotals struct {
	ValorFrete   decimal.Decimal
	ValorServico decimal.Decimal
	Desconto     *decimal.Decimal
	ValorLiquido *decimal.Decimal
}

// ReportGroup is a node of the report tree. Subtotal always comes from
// the totals calculator over exactly the group's member rows.
type ReportGroup struct {
	Key       string
	Label     string
	Rows      []ReportRow
	Subtotal  ReportTotals
	Subgroups []ReportGroup
}

// ReportResponse is the assembled fechamento report.
type ReportResponse struct {
	ID          uuid.UUID
	Groups      []ReportGroup
	Total       ReportTotals
	GeneratedAt time.Time
}
