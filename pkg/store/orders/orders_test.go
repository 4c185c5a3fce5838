package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersJSON = `[
	{
		"id": "A",
		"numero": "1001",
		"cliente": "ACME",
		"status": "Concluido",
		"valor_frete": "50,00",
		"total_value": 350,
		"items": [
			{"descricao": "Banner", "quantity": 2, "unit_price": 100}
		]
	},
	{
		"id": "B",
		"numero": "1002",
		"cliente": "Beta",
		"status": "Pendente",
		"valor_frete": null,
		"items": []
	}
]`

func TestFileSource_ListOrders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(ordersJSON), 0o644))

	records, err := NewFileSource(path).ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].ID)
	assert.Equal(t, "50,00", records[0].ValorFrete)
	assert.Equal(t, float64(350), records[0].TotalValue)
	assert.Nil(t, records[1].ValorFrete)
	assert.Empty(t, records[1].Items)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource("/nonexistent/orders.json").ListOrders(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource_ListOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ordersJSON))
	}))
	defer srv.Close()

	records, err := NewHTTPSource(srv.URL, srv.Client()).ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1001", records[0].Numero)
}

func TestHTTPSource_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, srv.Client()).ListOrders(context.Background())
	assert.Error(t, err)
}
