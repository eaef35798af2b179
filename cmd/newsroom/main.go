// Command newsroom runs the news API.
//
//	newsroom serve              # start the HTTP API
//	newsroom migrate            # apply database migrations and exit
//	newsroom --env-file app.env serve
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/newsroom/internal/config"
	"github.com/deppfellow/newsroom/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "newsroom",
	Short: "CRUD API for authors, tags and news",
	Long: `newsroom serves authors, tags and news over a JSON REST API backed
by PostgreSQL.

Configuration is read from NEWSROOM_* environment variables, a .env file
in the working directory and, optionally, a properties file given with
--env-file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "properties file to load before reading the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// bootstrap loads the configuration and builds the application logger.
func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, &log, loggerService, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
