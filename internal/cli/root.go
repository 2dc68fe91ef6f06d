package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/bootstrap"
	"shopadmin/internal/config"
	"shopadmin/internal/logger"
	"shopadmin/internal/maintenance"
)

// app is the state shared by every subcommand once the root pre-run has built it.
type app struct {
	configPath string
	api        string
	logLevel   string
	logFormat  string

	cfg  *config.Config
	log  *slog.Logger
	mode *maintenance.Mode
	svcs backend.Services
}

// NewRootCmd creates the root cobra command for the shopadmin CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "shopadmin",
		Short: "Shop administration client",
		Long:  "shopadmin lists and edits the shops, products and categories of the shop backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config.yaml (defaults only when empty)")
	root.PersistentFlags().StringVar(&a.api, "api", "", "backend origin (overrides "+config.APIEnvVar+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(
		newShopsCmd(a),
		newProductsCmd(a),
		newCategoriesCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if v := strings.TrimRight(strings.TrimSpace(a.api), "/"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
		Env:       cfg.Env,
		Writer:    os.Stderr,
	})

	a.mode = maintenance.New(a.log, func() {
		a.log.Warn("backend unavailable", "location", failure.MaintenanceLocation, "backend", cfg.Backend.BaseURL)
	})

	svcs, err := bootstrap.BuildServices(cfg, a.log, a.mode)
	if err != nil {
		return err
	}
	a.svcs = svcs
	return nil
}
