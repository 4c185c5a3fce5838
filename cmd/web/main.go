package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grafica-tools/fechamento/pkg/server"
	"github.com/grafica-tools/fechamento/pkg/services/config"
	"github.com/grafica-tools/fechamento/pkg/services/fechamento"
	"github.com/grafica-tools/fechamento/pkg/services/money"
	"github.com/grafica-tools/fechamento/pkg/store/orders"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the fechamento report service",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "fechamento.yaml",
		"Path to the service configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Env overrides keep container deployments config-file free.
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	parser := money.NewParser(money.NewCache(cfg.Cache.Capacity))
	source := orders.NewHTTPSource(cfg.Upstream.OrdersURL, &http.Client{Timeout: cfg.Upstream.Timeout})

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Upstream order system: `%s`", cfg.Upstream.OrdersURL)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Orders:    source,
			Generator: fechamento.NewGenerator(parser),
		},
	})

	return api.Start()
}
