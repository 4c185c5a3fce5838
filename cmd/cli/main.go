package main

import (
	"fmt"
	"os"

	"github.com/grafica-tools/fechamento/pkg/runtime/terminal"
	"github.com/grafica-tools/fechamento/pkg/services/money"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		CacheCapacity: money.DefaultCacheCapacity,
		Output:        os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
