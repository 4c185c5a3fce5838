package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRequestPayload is the wire form of a report request. Shape
// validation lives in the struct tags; semantic validation (known
// report type, ordered period) is the engine's job.
type ReportRequestPayload struct {
	ReportType        string `json:"report_type" validate:"required"`
	StartDate         string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate           string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateMode          string `json:"date_mode,omitempty" validate:"omitempty,oneof=entrada entrega auto"`
	Status            string `json:"status,omitempty" validate:"omitempty,oneof=Pendente EmProcessamento Concluido Cancelado"`
	Cliente           string `json:"cliente,omitempty"`
	Vendedor          string `json:"vendedor,omitempty"`
	FreteDistribution string `json:"frete_distribution,omitempty" validate:"omitempty,oneof=por_pedido proporcional proporcional_inteiro atribuicao_unica"`
}

type ReportRow struct {
	Ficha        string          `json:"ficha"`
	Descricao    string          `json:"descricao"`
	ValorFrete   decimal.Decimal `json:"valor_frete"`
	ValorServico decimal.Decimal `json:"valor_servico"`
}

type ReportTotals struct {
	ValorFrete   decimal.Decimal  `json:"valor_frete"`
	ValorServico decimal.Decimal  `json:"valor_servico"`
	Desconto     *decimal.Decimal `json:"desconto,omitempty"`
	ValorLiquido *decimal.Decimal `json:"valor_liquido,omitempty"`
}

type ReportGroup struct {
	Key       string        `json:"key"`
	Label     string        `json:"label"`
	Rows      []ReportRow   `json:"rows"`
	Subtotal  ReportTotals  `json:"subtotal"`
	Subgroups []ReportGroup `json:"subgroups,omitempty"`
}

type ReportResponse struct {
	ID          string        `json:"id"`
	Groups      []ReportGroup `json:"groups"`
	Total       ReportTotals  `json:"total"`
	GeneratedAt time.Time     `json:"generated_at"`
}

type ReportTypeList struct {
	Types []string `json:"types"`
}

type Error struct {
	Error string `json:"error"`
}
