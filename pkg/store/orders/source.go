// Package orders provides the order-retrieval collaborators the report
// engine consumes. The engine itself never fetches data; a Source is
// composed with it by the handler or the CLI.
package orders

import (
	"context"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

type Source interface {
	ListOrders(ctx context.Context) ([]domain.OrderRecord, error)
}
