package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

const defaultTimeout = 30 * time.Second

// HTTPSource fetches the order list from the upstream order system's
// JSON endpoint.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) ListOrders(ctx context.Context) ([]domain.OrderRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build orders request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("orders endpoint returned %s", resp.Status)
	}

	var records []domain.OrderRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return records, nil
}
