package fechamento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

func order(id, cliente string, status domain.OrderStatus, entrada, entrega string) domain.OrderRecord {
	return domain.OrderRecord{
		ID:          id,
		Numero:      id,
		Cliente:     cliente,
		Status:      status,
		DataEntrada: entrada,
		DataEntrega: entrega,
	}
}

func TestFilterOrders_DateRangeInclusive(t *testing.T) {
	orders := []domain.OrderRecord{
		order("1", "ACME", domain.StatusConcluido, "2026-08-01", ""),
		order("2", "ACME", domain.StatusConcluido, "2026-08-10", ""),
		order("3", "ACME", domain.StatusConcluido, "2026-08-20", ""),
	}
	req := domain.ReportRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-10",
		DateMode:  domain.DateModeEntrada,
	}

	got := filterOrders(orders, req)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestFilterOrders_MissingReferenceDateExcluded(t *testing.T) {
	orders := []domain.OrderRecord{
		order("1", "ACME", domain.StatusConcluido, "", ""),
		order("2", "ACME", domain.StatusConcluido, "2026-08-05", ""),
	}
	req := domain.ReportRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
		DateMode:  domain.DateModeAuto,
	}

	got := filterOrders(orders, req)

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterOrders_AutoPrefersEntrega(t *testing.T) {
	orders := []domain.OrderRecord{
		// Entry inside the window, delivery outside: auto follows the
		// delivery date and drops the order.
		order("1", "ACME", domain.StatusConcluido, "2026-08-05", "2026-09-02"),
		order("2", "ACME", domain.StatusConcluido, "2026-08-05", ""),
	}
	req := domain.ReportRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
		DateMode:  domain.DateModeAuto,
	}

	got := filterOrders(orders, req)

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterOrders_StatusIsStrict(t *testing.T) {
	orders := []domain.OrderRecord{
		order("1", "ACME", domain.StatusConcluido, "", ""),
		order("2", "ACME", domain.StatusCancelado, "", ""),
	}

	got := filterOrders(orders, domain.ReportRequest{Status: domain.StatusConcluido})

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterOrders_ClienteSubstringCaseInsensitive(t *testing.T) {
	orders := []domain.OrderRecord{
		order("1", "Gráfica ACME Ltda", domain.StatusConcluido, "", ""),
		order("2", "Beta Prints", domain.StatusConcluido, "", ""),
	}

	got := filterOrders(orders, domain.ReportRequest{Cliente: "acme"})

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterRows_VendedorSubstring(t *testing.T) {
	rows := []domain.NormalizedRow{
		{OrderID: "1", Vendedor: "Carla Souza"},
		{OrderID: "2", Vendedor: "Marcos"},
	}

	got := filterRows(rows, domain.ReportRequest{Vendedor: "carla"})

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].OrderID)
}
