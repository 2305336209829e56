// Package cmd implements the discogs-alert CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/discogs-alert/internal/config"
	"github.com/donaldgifford/discogs-alert/internal/discogs"
	"github.com/donaldgifford/discogs-alert/pkg/logger"
)

var errNotFound = errors.New("not found")

// NewRootCmd builds the command tree. Tests get a fresh tree per call.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "discogs-alert",
		Short: "Watch the Discogs marketplace for records you want",
		Long: "discogs-alert checks the Discogs marketplace for releases on your\n" +
			"wantlist, lists or config, filters listings by price, condition,\n" +
			"seller rating and country, and sends new matches to Discord.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, v)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file path")
	pf.String("token", "", "Discogs personal access token (env DISCOGS_ALERT_TOKEN)")
	pf.StringP("output", "o", "table", "output format (table, json)")
	pf.String("log-level", "", "log level override (debug, info, warn, error)")
	pf.BoolP("verbose", "v", false, "print the API rate limit after each request")

	app := &app{v: v}

	root.AddCommand(
		releaseCmd(app),
		listingCmd(app),
		listCmd(app),
		statsCmd(app),
		wantlistCmd(app),
		marketplaceCmd(app),
		watchCmd(app),
		serverCmd(app),
		versionCmd(app),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix("DISCOGS_ALERT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(cmd.Flags())
}

// app carries the settings shared by every command.
type app struct {
	v *viper.Viper
}

func (a *app) jsonOutput() bool {
	return strings.EqualFold(a.v.GetString("output"), "json")
}

func (a *app) verbose() bool {
	return a.v.GetBool("verbose")
}

// loadConfig reads the config file when one is given and applies flag and
// environment overrides on top.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if path := a.v.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if tok := a.v.GetString("token"); tok != "" {
		cfg.Discogs.Token = tok
	}
	if lvl := a.v.GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	return cfg, nil
}

func (*app) newLogger(cfg *config.Config) *slog.Logger {
	return logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
}

func newAPIClient(cfg *config.Config, log *slog.Logger) *discogs.Client {
	transport := discogs.NewTokenTransport(cfg.Discogs.Token,
		discogs.WithUserAgent(cfg.Discogs.UserAgent),
		discogs.WithTokenHTTPClient(&http.Client{Timeout: cfg.Discogs.Timeout}),
	)
	return discogs.New(transport,
		discogs.WithBaseURL(cfg.Discogs.APIURL),
		discogs.WithLogger(logger.Component(log, "discogs")),
	)
}

// apiSetup loads config, requires a token and returns an API client.
func (a *app) apiSetup() (*discogs.Client, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Discogs.Token == "" {
		return nil, errors.New("a Discogs token is required (--token, DISCOGS_ALERT_TOKEN or discogs.token)")
	}
	return newAPIClient(cfg, a.newLogger(cfg)), nil
}

// render prints v as JSON or through table, then the rate limit when
// --verbose is set.
func (a *app) render(w io.Writer, c *discogs.Client, v any, table func(io.Writer) error) error {
	var err error
	if a.jsonOutput() {
		err = outputJSON(w, v)
	} else {
		err = table(w)
	}
	if err != nil {
		return err
	}

	if a.verbose() && c != nil {
		if rl, ok := c.RateLimit(); ok {
			return printRateLimit(os.Stderr, rl)
		}
	}
	return nil
}
