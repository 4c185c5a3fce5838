package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafica-tools/fechamento/pkg/services/fechamento"
	"github.com/grafica-tools/fechamento/pkg/services/money"
	"github.com/grafica-tools/fechamento/pkg/terminal/commands"
	"github.com/grafica-tools/fechamento/pkg/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	generator *fechamento.Generator
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	CacheCapacity int
	Output        io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	parser := money.NewParser(money.NewCache(opts.CacheCapacity))
	cli := &CLI{
		generator: fechamento.NewGenerator(parser),
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fechamento",
		Short: "Print-shop financial closing reports",
	}

	cmd.AddCommand(commands.NewFechamentoCmd(cli.generator, cli.reporter))
	cmd.AddCommand(commands.NewTypesCmd())

	return cmd
}
