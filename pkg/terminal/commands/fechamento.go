package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
	"github.com/grafica-tools/fechamento/pkg/services/fechamento"
	"github.com/grafica-tools/fechamento/pkg/store/orders"
	"github.com/grafica-tools/fechamento/pkg/terminal/export"
)

type FechamentoCmd struct {
	ordersPath        string
	reportType        string
	startDate         string
	endDate           string
	dateMode          string
	status            string
	cliente           string
	vendedor          string
	freteDistribution string

	generator *fechamento.Generator
	reporter  *export.Reporter
}

func NewFechamentoCmd(generator *fechamento.Generator, reporter *export.Reporter) *cobra.Command {
	fc := &FechamentoCmd{generator: generator, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "fechamento",
		Short: "Generate a financial closing report from an orders dump",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.ordersPath, "orders", "", "Path to a JSON file with the order list")
	cmd.Flags().StringVar(&fc.reportType, "report-type", string(domain.SinteticoData), "Report type (see the types command)")
	cmd.Flags().StringVar(&fc.startDate, "start-date", "", "Period start, YYYY-MM-DD")
	cmd.Flags().StringVar(&fc.endDate, "end-date", "", "Period end, YYYY-MM-DD")
	cmd.Flags().StringVar(&fc.dateMode, "date-mode", "auto", "Reference date: entrada, entrega or auto")
	cmd.Flags().StringVar(&fc.status, "status", "", "Filter by order status")
	cmd.Flags().StringVar(&fc.cliente, "cliente", "", "Filter by client (substring)")
	cmd.Flags().StringVar(&fc.vendedor, "vendedor", "", "Filter by salesperson (substring)")
	cmd.Flags().StringVar(&fc.freteDistribution, "frete", string(domain.FretePorPedido), "Freight distribution policy")

	_ = cmd.MarkFlagRequired("orders")

	return cmd
}

func (fc *FechamentoCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	source := orders.NewFileSource(fc.ordersPath)
	records, err := source.ListOrders(ctx)
	if err != nil {
		return err
	}

	report, err := fc.generator.Generate(ctx, records, domain.ReportRequest{
		Type:              domain.ReportType(fc.reportType),
		StartDate:         fc.startDate,
		EndDate:           fc.endDate,
		DateMode:          domain.DateMode(fc.dateMode),
		Status:            domain.OrderStatus(fc.status),
		Cliente:           fc.cliente,
		Vendedor:          fc.vendedor,
		FreteDistribution: domain.FreteDistribution(fc.freteDistribution),
	})
	if err != nil {
		return fmt.Errorf("failed to generate fechamento: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int("orders", len(records)).
		Int("groups", len(report.Groups)).
		Msg("relatório gerado")

	return fc.reporter.Handle(report)
}
