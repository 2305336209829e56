package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/discogs-alert/internal/api/handlers"
	"github.com/donaldgifford/discogs-alert/internal/api/middleware"
	"github.com/donaldgifford/discogs-alert/internal/config"
	"github.com/donaldgifford/discogs-alert/internal/discogs"
	"github.com/donaldgifford/discogs-alert/internal/engine"
	"github.com/donaldgifford/discogs-alert/internal/notify"
	"github.com/donaldgifford/discogs-alert/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func watchCmd(a *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Check watched releases and alert on new matches",
		Long: "Run alert checks on the configured schedule and serve health,\n" +
			"metrics and API endpoints. With --once, run a single check and exit.",
		Example: `  # Serve with scheduled checks
  discogs-alert watch --config config.yaml

  # One check, print the counts
  discogs-alert watch --config config.yaml --once -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			log := a.newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := newWatcher(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer w.close()

			if once {
				res, err := w.engine.RunCheck(ctx)
				if err != nil {
					return err
				}
				return a.render(cmd.OutOrStdout(), w.api, res, func(out io.Writer) error {
					return printCheckResult(out, res)
				})
			}

			return w.serve(ctx, cfg)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "run a single check and exit")

	return cmd
}

// watcher holds the long-lived pieces of the watch command.
type watcher struct {
	log     *slog.Logger
	api     *discogs.Client
	browser *discogs.BrowserSession
	anon    *discogs.AnonClient
	engine  *engine.Engine
}

func newWatcher(ctx context.Context, cfg *config.Config, log *slog.Logger) (*watcher, error) {
	rule, targets := engine.TargetsFromConfig(cfg.Alerts)
	if len(targets) == 0 && !cfg.HasCatalogSources() {
		return nil, errors.New("nothing to watch: set alerts.releases, alerts.wantlist_user or alerts.list_ids")
	}

	w := &watcher{log: log}

	var catalog engine.Catalog
	if cfg.HasCatalogSources() {
		if cfg.Discogs.Token == "" {
			return nil, errors.New("wantlist and list sources need a Discogs token")
		}
		w.api = newAPIClient(cfg, log)
		catalog = w.api
	}

	browser, err := newBrowserSession(ctx, cfg)
	if err != nil {
		return nil, err
	}
	w.browser = browser
	w.anon = newAnonClient(browser, cfg, log)

	w.engine = engine.NewEngine(catalog, w.anon, newNotifier(cfg, log),
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithWantlistUser(cfg.Alerts.WantlistUser),
		engine.WithListIDs(cfg.Alerts.ListIDs...),
		engine.WithTargets(targets...),
		engine.WithDefaultRule(rule),
		engine.WithReleaseDelay(cfg.Schedule.ReleaseDelay),
		engine.WithSiteURL(cfg.Discogs.SiteURL),
	)

	return w, nil
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}
	log.Warn("discord disabled, alerts are only logged")
	return notify.NewNoOpNotifier(logger.Component(log, "notify"))
}

func (w *watcher) close() {
	if err := w.anon.Close(); err != nil {
		w.log.Warn("closing browser", "error", err)
	}
}

// serve runs the scheduler and HTTP server until ctx is done.
func (w *watcher) serve(ctx context.Context, cfg *config.Config) error {
	e := newServer(w, cfg, w.log)

	sched, err := engine.NewScheduler(w.engine, cfg.Schedule.CheckInterval, logger.Component(w.log, "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	addr := cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port)
	w.log.Info("starting server", "addr", addr, "check_interval", cfg.Schedule.CheckInterval)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	w.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		w.log.Warn("running check did not finish before shutdown")
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	w.log.Info("server stopped")
	return serveErr
}

func newServer(w *watcher, cfg *config.Config, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	httpLog := logger.Component(log, "http")
	e.Use(
		middleware.Recovery(httpLog),
		middleware.RequestLog(httpLog),
		middleware.Metrics(),
	)

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(w.browser))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("discogs-alert", Version))

	var rl handlers.RateLimitSource
	if w.api != nil {
		rl = w.api
	}
	handlers.RegisterRateLimitRoutes(api, handlers.NewRateLimitHandler(rl))
	handlers.RegisterTriggerRoutes(api, handlers.NewCheckHandler(w.engine))
	handlers.RegisterMarketplaceRoutes(api, handlers.NewMarketplaceHandler(w.anon))

	return e
}
