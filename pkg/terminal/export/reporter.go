package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
	"github.com/grafica-tools/fechamento/pkg/services/money"
)

// Reporter renders a fechamento report to the console in a formatted
// text form.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.ReportResponse) error {
	funcMap := template.FuncMap{
		"money": money.Format,
		"maybe": func(d *decimal.Decimal) string {
			if d == nil {
				return "-"
			}
			return money.Format(*d)
		},
	}

	tmpl := `
Fechamento {{.ID}} ({{.GeneratedAt.Format "2006-01-02 15:04:05"}})
Frete total:   R$ {{money .Total.ValorFrete}}
Serviço total: R$ {{money .Total.ValorServico}}
{{if .Total.Desconto}}Desconto:      R$ {{maybe .Total.Desconto}}
Líquido:       R$ {{maybe .Total.ValorLiquido}}
{{end}}
{{range .Groups}}
=== {{.Label}} ===
{{range .Rows}}  {{.Ficha}}  {{.Descricao}}  frete R$ {{money .ValorFrete}}  serviço R$ {{money .ValorServico}}
{{end}}  subtotal: frete R$ {{money .Subtotal.ValorFrete}} / serviço R$ {{money .Subtotal.ValorServico}}
{{range .Subgroups}}  -- {{.Label}}: frete R$ {{money .Subtotal.ValorFrete}} / serviço R$ {{money .Subtotal.ValorServico}}
{{end}}{{end}}
`
	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
