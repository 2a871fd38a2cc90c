package cli

import (
	"fmt"

	"invoicedesk/internal/config"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/repository"
	"invoicedesk/internal/routes"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the invoicedesk HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err := logger.NewStructuredLogger(logger.LoggerConfig{
			Level:      logger.ParseLevel(cfg.Logging.Level),
			Service:    "invoicedesk",
			Version:    "1.0",
			OutputPath: cfg.Logging.File,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer log.Close()

		db, err := repository.NewDatabase(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		router := routes.NewRouter(db, cfg, log)

		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Info("Starting server", map[string]interface{}{"addr": addr})
		return router.Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
