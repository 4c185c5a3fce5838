package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafica-tools/fechamento/pkg/services/fechamento"
)

func NewTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the available report types",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, t := range fechamento.ReportTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
		},
	}
}
