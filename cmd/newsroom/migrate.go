package main

import (
	"context"
	"time"

	"github.com/deppfellow/newsroom/internal/database"
	"github.com/spf13/cobra"
)

var migrateTimeout time.Duration

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, loggerService, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
		defer cancel()

		return database.Migrate(ctx, log, cfg)
	},
}

func init() {
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", time.Minute, "give up if migrations take longer")
}
