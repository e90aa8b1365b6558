package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/timelog-reporter/pkg/server"
	"github.com/de-tools/timelog-reporter/pkg/services/config"
	"github.com/de-tools/timelog-reporter/pkg/services/report"
	"github.com/de-tools/timelog-reporter/pkg/store/duckdb"
	"github.com/de-tools/timelog-reporter/pkg/store/duckdb/timelog"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the timelog reporter",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a settings file (yaml, toml or json)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	db, err := duckdb.NewDB(duckdb.Settings{})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	loader, err := timelog.NewLoader(db)
	if err != nil {
		return fmt.Errorf("failed to create timelog loader: %w", err)
	}

	parser := settings.DateParser()
	registry, err := report.NewDefaultRegistry(parser)
	if err != nil {
		return err
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(settings.Server.Host, settings.Server.Port),
		Dependencies: server.Dependencies{
			Registry: registry,
			Loader:   loader,
			Parser:   parser,
			Logger:   logger,
		},
	})

	return api.Start()
}
