package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"slices"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	govukecho "github.com/pthm/govuk/adapters/echo"
	"github.com/pthm/govuk/internal/config"
	"github.com/pthm/govuk/internal/metrics"
	"github.com/pthm/govuk/lib/document"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var documentName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve documents over HTTP",
		Long: `Serve the documents in the configured directory.

GET /<name> renders <name>.yaml as a full page. POST /<name> checks the
submitted form against the document's validation rules: on failure the errors
and values are carried back to the form in a cookie, otherwise the client is
redirected to the document's next page. Metrics are served at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Address = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := newServer(a.cfg, a.logger, prometheus.NewRegistry())
			return s.run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.address)")
	return cmd
}

type server struct {
	e       *echo.Echo
	cfg     *config.Config
	logger  *zap.Logger
	docs    *document.Registry
	metrics *metrics.Metrics
}

func newServer(cfg *config.Config, logger *zap.Logger, reg *prometheus.Registry) *server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &server{
		e:       e,
		cfg:     cfg,
		logger:  logger,
		docs:    document.DefaultRegistry(),
		metrics: metrics.New(reg),
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	pages := e.Group("")
	govukecho.MountGroup(pages,
		govukecho.WithKey([]byte(cfg.Server.CookieKey)),
		govukecho.WithSealedState(cfg.Server.SealState),
		govukecho.WithOptions(cfg.Render),
		govukecho.WithLogger(logger),
		govukecho.WithObserver(s.metrics),
	)
	pages.GET("/:name", s.show)
	pages.POST("/:name", s.submit)
	return s
}

func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening",
			zap.String("address", s.cfg.Server.Address),
			zap.String("documents", s.cfg.Server.Documents),
		)
		errCh <- s.e.Start(s.cfg.Server.Address)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.e.Shutdown(shutdownCtx)
}

func (s *server) load(name string) (*document.Document, error) {
	if !documentName.MatchString(name) {
		return nil, echo.ErrNotFound
	}
	doc, err := document.Load(filepath.Join(s.cfg.Server.Documents, name+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, echo.ErrNotFound
	}
	if err != nil {
		s.logger.Error("loading document failed", zap.String("document", name), zap.Error(err))
		return nil, echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return doc, nil
}

func (s *server) show(c echo.Context) error {
	doc, err := s.load(c.Param("name"))
	if err != nil {
		return err
	}
	body, err := doc.Component(s.docs)
	if err != nil {
		s.logger.Error("building document failed", zap.String("document", c.Param("name")), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return govukecho.Render(c, document.Page(doc, body))
}

func (s *server) submit(c echo.Context) error {
	name := c.Param("name")
	doc, err := s.load(name)
	if err != nil {
		return err
	}
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body").SetInternal(err)
	}

	state := doc.Validate(form)
	if !state.IsValid() {
		s.logger.Debug("form rejected", zap.String("document", name), zap.Strings("fields", state.Fields()))
		if err := govukecho.SaveModelState(c, state); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, c.Request().URL.Path)
	}

	s.logger.Info("form accepted", zap.String("document", name), zap.Strings("fields", sortedKeys(form)))
	next := doc.Next
	if next == "" {
		next = c.Request().URL.Path
	}
	return c.Redirect(http.StatusSeeOther, next)
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
