package fechamento

import (
	"sort"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

// keyFunc extracts the grouping label of a row for one dimension.
// Labels come out of the flattener with fallbacks already applied.
type keyFunc func(domain.NormalizedRow) string

// reportSpec binds a report type to its dimensions. secondary is nil
// for one-level reports.
type reportSpec struct {
	primary   keyFunc
	secondary keyFunc
}

var (
	byDesigner = func(r domain.NormalizedRow) string { return r.Designer }
	byCliente  = func(r domain.NormalizedRow) string { return r.Cliente }
	byVendedor = func(r domain.NormalizedRow) string { return r.Vendedor }
	byData     = func(r domain.NormalizedRow) string { return r.DataLabel }
	byEnvio    = func(r domain.NormalizedRow) string { return r.FormaEnvio }
	byTipo     = func(r domain.NormalizedRow) string { return r.Tipo }
)

var reportRegistry = map[domain.ReportType]reportSpec{
	domain.SinteticoDesigner: {primary: byDesigner},
	domain.SinteticoCliente:  {primary: byCliente},
	domain.SinteticoVendedor: {primary: byVendedor},
	domain.SinteticoData:     {primary: byData},
	domain.SinteticoEnvio:    {primary: byEnvio},
	domain.SinteticoTipo:     {primary: byTipo},

	domain.AnaliticoDesignerCliente:  {primary: byDesigner, secondary: byCliente},
	domain.AnaliticoClienteDesigner:  {primary: byCliente, secondary: byDesigner},
	domain.AnaliticoVendedorDesigner: {primary: byVendedor, secondary: byDesigner},
	domain.AnaliticoDesignerVendedor: {primary: byDesigner, secondary: byVendedor},
	domain.AnaliticoClienteTipo:      {primary: byCliente, secondary: byTipo},
	domain.AnaliticoDesignerTipo:     {primary: byDesigner, secondary: byTipo},
	domain.AnaliticoEnvioTipo:        {primary: byEnvio, secondary: byTipo},
}

// ReportTypes lists every registered report type, sorted for stable
// presentation.
func ReportTypes() []domain.ReportType {
	types := make([]domain.ReportType, 0, len(reportRegistry))
	for t := range reportRegistry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// bucket collects the member rows of one group key in first-seen order.
type bucket struct {
	key   string
	label string
	rows  []domain.NormalizedRow
}

func partition(rows []domain.NormalizedRow, key keyFunc) []*bucket {
	var ordered []*bucket
	index := make(map[string]*bucket)

	for _, row := range rows {
		label := key(row)
		k := groupKey(label)
		b, ok := index[k]
		if !ok {
			b = &bucket{key: k, label: label}
			index[k] = b
			ordered = append(ordered, b)
		}
		b.rows = append(b.rows, row)
	}
	return ordered
}

// group buckets rows into the report tree for the requested type and
// fills every node's subtotal from the totals calculator over exactly
// its member rows. Two-level types partition each top-level bucket
// again by the secondary key; the top-level subtotal still covers the
// union of its subgroup rows.
func group(rows []domain.NormalizedRow, spec reportSpec, policy domain.FreteDistribution) []domain.ReportGroup {
	buckets := partition(rows, spec.primary)
	groups := make([]domain.ReportGroup, 0, len(buckets))

	for _, b := range buckets {
		g := domain.ReportGroup{
			Key:      b.key,
			Label:    b.label,
			Rows:     projectRows(b.rows),
			Subtotal: ComputeTotals(b.rows, policy),
		}
		if spec.secondary != nil {
			for _, sb := range partition(b.rows, spec.secondary) {
				g.Subgroups = append(g.Subgroups, domain.ReportGroup{
					Key:      sb.key,
					Label:    sb.label,
					Rows:     projectRows(sb.rows),
					Subtotal: ComputeTotals(sb.rows, policy),
				})
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func projectRows(rows []domain.NormalizedRow) []domain.ReportRow {
	out := make([]domain.ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ReportRow{
			Ficha:        r.Ficha,
			Descricao:    r.Descricao,
			ValorFrete:   r.ValorFrete,
			ValorServico: r.ValorServico,
		})
	}
	return out
}
