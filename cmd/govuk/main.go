// Package main implements the govuk CLI: render YAML documents to GOV.UK
// Design System markup, or serve them with post/redirect/get validation.
package main

import (
	"os"

	"github.com/pthm/govuk/internal/config"
	"github.com/pthm/govuk/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by subcommands once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "govuk",
		Short: "Render GOV.UK Design System pages from YAML documents",
		Long: `govuk renders declarative YAML documents into GOV.UK Design System markup.

Components are validated as they are composed: a hint outside a form group,
a duplicate label or a legend after a radio item fails the render with a
message naming the offending element.

Examples:
  # Render a document body to stdout
  govuk render contact.yaml

  # Render a full page to a file
  govuk render --page --out contact.html contact.yaml

  # Serve every document in ./pages
  GOVUK_SERVER_DOCUMENTS=./pages govuk serve`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetErrPrefix("govuk:")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.AddCommand(newRenderCmd(a), newServeCmd(a), newTagsCmd())
	return root
}
