// Package fechamento implements the financial closing report engine:
// it turns raw order records into a grouped report tree with freight,
// service and inferred-discount totals.
package fechamento

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
	"github.com/grafica-tools/fechamento/pkg/services/money"
	"github.com/grafica-tools/fechamento/pkg/services/resolver"
)

// ValidationError is a fatal request problem detected before any
// processing. No partial report is produced for it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payload inválido: %s: %s", e.Field, e.Reason)
}

// Generator orchestrates the report pipeline. One Generator serves any
// number of concurrent requests; the only shared state is the monetary
// parser's cache, which guards itself.
type Generator struct {
	parser   *money.Parser
	resolver *resolver.Resolver
}

func NewGenerator(parser *money.Parser) *Generator {
	return &Generator{
		parser:   parser,
		resolver: resolver.NewResolver(parser),
	}
}

// Validate checks the request without running it. Unknown report
// types, unreadable dates and inverted ranges are fatal.
func Validate(req domain.ReportRequest) error {
	if _, ok := reportRegistry[req.Type]; !ok {
		return &ValidationError{Field: "report_type", Reason: fmt.Sprintf("tipo de relatório desconhecido: %q", req.Type)}
	}

	// Unlike order dates, request dates are strict ISO: the contract
	// is YYYY-MM-DD and anything else is the caller's bug.
	start, hasStart := time.Time{}, false
	if req.StartDate != "" {
		var err error
		if start, err = time.Parse(isoDate, req.StartDate); err != nil {
			return &ValidationError{Field: "start_date", Reason: fmt.Sprintf("data ilegível: %q", req.StartDate)}
		}
		hasStart = true
	}
	if req.EndDate != "" {
		end, err := time.Parse(isoDate, req.EndDate)
		if err != nil {
			return &ValidationError{Field: "end_date", Reason: fmt.Sprintf("data ilegível: %q", req.EndDate)}
		}
		if hasStart && start.After(end) {
			return &ValidationError{Field: "start_date", Reason: "início do período depois do fim"}
		}
	}

	switch req.FreteDistribution {
	case "", domain.FretePorPedido, domain.FreteProporcional,
		domain.FreteProporcionalInteiro, domain.FreteAtribuicaoUnica:
	default:
		return &ValidationError{Field: "frete_distribution", Reason: fmt.Sprintf("política desconhecida: %q", req.FreteDistribution)}
	}

	return nil
}

// Generate runs the full pipeline: validate, filter orders, flatten,
// filter rows, distribute freight, group, and total. The grand total
// covers all filtered rows regardless of grouping, with the same
// freight de-duplication the groups use.
func (g *Generator) Generate(
	ctx context.Context,
	orders []domain.OrderRecord,
	req domain.ReportRequest,
) (*domain.ReportResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	if req.FreteDistribution == "" {
		req.FreteDistribution = domain.FretePorPedido
	}
	if req.DateMode == "" {
		req.DateMode = domain.DateModeAuto
	}

	filtered := filterOrders(orders, req)
	rows := g.flatten(ctx, filtered, req.DateMode)
	rows = filterRows(rows, req)
	distributeFrete(rows, req.FreteDistribution)

	groups := group(rows, reportRegistry[req.Type], req.FreteDistribution)

	zerolog.Ctx(ctx).Debug().
		Str("report_type", string(req.Type)).
		Int("orders", len(filtered)).
		Int("rows", len(rows)).
		Int("groups", len(groups)).
		Msg("fechamento gerado")

	return &domain.ReportResponse{
		ID:          uuid.New(),
		Groups:      groups,
		Total:       ComputeTotals(rows, req.FreteDistribution),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
