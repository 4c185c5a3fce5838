package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

// FileSource reads orders from a JSON dump, the shape the CLI works
// with.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) ListOrders(_ context.Context) ([]domain.OrderRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders file: %w", err)
	}

	var records []domain.OrderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse orders file %s: %w", s.path, err)
	}
	return records, nil
}
