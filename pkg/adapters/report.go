package adapters

import (
	"github.com/grafica-tools/fechamento/pkg/models/api"
	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

func MapReportPayloadApiToDomain(p api.ReportRequestPayload) domain.ReportRequest {
	return domain.ReportRequest{
		Type:              domain.ReportType(p.ReportType),
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		DateMode:          domain.DateMode(p.DateMode),
		Status:            domain.OrderStatus(p.Status),
		Cliente:           p.Cliente,
		Vendedor:          p.Vendedor,
		FreteDistribution: domain.FreteDistribution(p.FreteDistribution),
	}
}

func MapReportResponseDomainToApi(r domain.ReportResponse) api.ReportResponse {
	resp := api.ReportResponse{
		ID:          r.ID.String(),
		Groups:      make([]api.ReportGroup, 0, len(r.Groups)),
		Total:       MapReportTotalsDomainToApi(r.Total),
		GeneratedAt: r.GeneratedAt,
	}
	for _, g := range r.Groups {
		resp.Groups = append(resp.Groups, MapReportGroupDomainToApi(g))
	}
	return resp
}

func MapReportGroupDomainToApi(g domain.ReportGroup) api.ReportGroup {
	group := api.ReportGroup{
		Key:      g.Key,
		Label:    g.Label,
		Rows:     make([]api.ReportRow, 0, len(g.Rows)),
		Subtotal: MapReportTotalsDomainToApi(g.Subtotal),
	}
	for _, row := range g.Rows {
		group.Rows = append(group.Rows, api.ReportRow{
			Ficha:        row.Ficha,
			Descricao:    row.Descricao,
			ValorFrete:   row.ValorFrete,
			ValorServico: row.ValorServico,
		})
	}
	for _, sub := range g.Subgroups {
		group.Subgroups = append(group.Subgroups, MapReportGroupDomainToApi(sub))
	}
	return group
}

func MapReportTotalsDomainToApi(t domain.ReportTotals) api.ReportTotals {
	return api.ReportTotals{
		ValorFrete:   t.ValorFrete,
		ValorServico: t.ValorServico,
		Desconto:     t.Desconto,
		ValorLiquido: t.ValorLiquido,
	}
}
