// Package cmd provides the root command and CLI setup for reprise.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/reprise/internal/adapter"
	"github.com/mouse-blink/reprise/internal/config"
	"github.com/mouse-blink/reprise/internal/controller"
	"github.com/mouse-blink/reprise/internal/domain"
	"github.com/mouse-blink/reprise/internal/logging"
)

// Collaborators are built by setup on first use; tests replace workflow.
var store adapter.Store
var workflow domain.Workflow
var ui controller.UI
var cfg = config.Default()

var configFlag string
var backendFlag string
var urlFlag string
var dbFlag string
var logLevelFlag string
var logFormatFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reprise",
		Short: "Cloze deletion drills for memorised text",
		Long: `Reprise keeps motifs, short passages you want to know by heart, and lets
you hide parts of them as cloze deletions. A reprisal shows each motif with
its deletions masked so you can recall the missing words, then reveals them.

Motifs live either behind the reprise HTTP API or in a local SQLite vault:
  reprise --backend http --url http://127.0.0.1:5000 motifs
  reprise --backend sqlite --db ~/.reprise/reprise.db reprise`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultPath(), "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: http or sqlite")
	cmd.PersistentFlags().StringVar(&urlFlag, "url", "", "base url of the reprise HTTP API")
	cmd.PersistentFlags().StringVar(&dbFlag, "db", "", "path of the SQLite vault")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format: text or json")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if store != nil {
		if closeErr := store.Close(); closeErr != nil {
			logging.Error("failed to close store", "error", closeErr)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, applies explicitly set flags on top of it,
// configures logging and builds the collaborators unless they already exist.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	applyFlags(cmd, &loaded)

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = loaded

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}

	logging.InitLogger(level, format, cmd.ErrOrStderr())
	logging.Debug("configuration loaded", "path", configFlag, "backend", cfg.Backend, "page_size", cfg.PageSize)

	if workflow != nil {
		return nil
	}

	store, err = newStore(cmd, cfg)
	if err != nil {
		return err
	}

	ui = controller.NewUI(cmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(store, ui)

	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("backend") {
		c.Backend = backendFlag
	}

	if flags.Changed("url") {
		c.BaseURL = urlFlag
	}

	if flags.Changed("db") {
		c.Database = dbFlag
	}

	if flags.Changed("log-level") {
		c.LogLevel = logLevelFlag
	}

	if flags.Changed("log-format") {
		c.LogFormat = logFormatFlag
	}
}

func newStore(cmd *cobra.Command, c config.Config) (adapter.Store, error) {
	if c.Backend == config.BackendSQLite {
		sqliteStore, err := adapter.NewSQLiteStore(cmd.Context(), c.Database, c.RepriseCount)
		if err != nil {
			return nil, err
		}

		return sqliteStore, nil
	}

	httpStore, err := adapter.NewHTTPStore(adapter.ClientConfig{
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return httpStore, nil
}
