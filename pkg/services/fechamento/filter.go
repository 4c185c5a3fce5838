package fechamento

import (
	"strings"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

// filterOrders applies the order-level filters: date range, status and
// client. Date bounds are inclusive; when a range is given, orders
// without a readable reference date are excluded. The status filter is
// strict: when set, only orders of exactly that status pass.
func filterOrders(orders []domain.OrderRecord, req domain.ReportRequest) []domain.OrderRecord {
	start, hasStart := parseDate(req.StartDate)
	end, hasEnd := parseDate(req.EndDate)
	cliente := strings.ToLower(strings.TrimSpace(req.Cliente))

	out := make([]domain.OrderRecord, 0, len(orders))
	for _, order := range orders {
		if hasStart || hasEnd {
			ref, ok := referenceDate(order, req.DateMode)
			if !ok {
				continue
			}
			if hasStart && ref.Before(start) {
				continue
			}
			if hasEnd && ref.After(end) {
				continue
			}
		}
		if req.Status != "" && order.Status != req.Status {
			continue
		}
		if cliente != "" && !strings.Contains(strings.ToLower(order.Cliente), cliente) {
			continue
		}
		out = append(out, order)
	}
	return out
}

// filterRows applies the item-level filters. Only the vendedor filter
// lives here; everything order-level was decided before flattening.
func filterRows(rows []domain.NormalizedRow, req domain.ReportRequest) []domain.NormalizedRow {
	vendedor := strings.ToLower(strings.TrimSpace(req.Vendedor))
	if vendedor == "" {
		return rows
	}

	out := make([]domain.NormalizedRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Vendedor), vendedor) {
			out = append(out, row)
		}
	}
	return out
}
