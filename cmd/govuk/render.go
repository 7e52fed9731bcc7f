package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pthm/govuk"
	"github.com/pthm/govuk/lib/document"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out  string
		page bool
	)
	cmd := &cobra.Command{
		Use:   "render <document.yaml>",
		Short: "Render a document to HTML",
		Long: `Render a YAML document to GOV.UK markup.

The document's model_state, if any, is applied so error states can be
previewed without a server. Nothing is written when composition fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := document.Load(path)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			err = document.Render(cmd.Context(), &buf, doc, document.DefaultRegistry(), page,
				govuk.WithOptions(a.cfg.Render),
				govuk.WithLogger(a.logger),
			)
			if err != nil {
				a.logger.Error("render failed",
					zap.String("document", path),
					zap.String("kind", govuk.ErrorKind(err)),
					zap.Error(err),
				)
				return fmt.Errorf("%s: %w", path, err)
			}

			if out == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return err
			}
			a.logger.Debug("rendered", zap.String("document", path), zap.String("out", out), zap.Int("bytes", buf.Len()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&page, "page", false, "wrap the body in the page template")
	return cmd
}

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the element tags documents may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, tag := range document.DefaultRegistry().Tags() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), tag); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
