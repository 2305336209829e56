// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Discogs       DiscogsConfig       `yaml:"discogs"`
	Browser       BrowserConfig       `yaml:"browser"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Server        ServerConfig        `yaml:"server"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// DiscogsConfig defines API and website access settings.
type DiscogsConfig struct {
	Token     string        `yaml:"token"`
	UserAgent string        `yaml:"user_agent"`
	APIURL    string        `yaml:"api_url"`
	SiteURL   string        `yaml:"site_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// BrowserConfig defines the headless browser used for marketplace pages.
type BrowserConfig struct {
	// Headless is a pointer so an explicit false survives defaulting.
	Headless     *bool         `yaml:"headless"`
	ExecPath     string        `yaml:"exec_path"`
	UserAgent    string        `yaml:"user_agent"` // empty picks a random desktop UA
	SettleDelay  time.Duration `yaml:"settle_delay"`
	WaitSelector string        `yaml:"wait_selector"`
}

// IsHeadless reports whether the browser runs without a window.
func (b *BrowserConfig) IsHeadless() bool {
	return b.Headless == nil || *b.Headless
}

// AlertsConfig defines which releases are watched and how listings are
// filtered.
type AlertsConfig struct {
	WantlistUser string          `yaml:"wantlist_user"`
	ListIDs      []int           `yaml:"list_ids"`
	Releases     []ReleaseConfig `yaml:"releases"`
	Defaults     FilterConfig    `yaml:"defaults"`
}

// ReleaseConfig overrides the default filter for one release.
type ReleaseConfig struct {
	ID                 int     `yaml:"id"`
	MaxPrice           float64 `yaml:"max_price"`
	MinMediaCondition  string  `yaml:"min_media_condition"`
	MinSleeveCondition string  `yaml:"min_sleeve_condition"`
}

// FilterConfig is the filter applied to releases without an explicit rule.
type FilterConfig struct {
	MaxPrice           float64  `yaml:"max_price"`
	MinMediaCondition  string   `yaml:"min_media_condition"`
	MinSleeveCondition string   `yaml:"min_sleeve_condition"`
	MinSellerRating    float64  `yaml:"min_seller_rating"`
	CountriesAllowed   []string `yaml:"countries_allowed"`
	CountriesBlocked   []string `yaml:"countries_blocked"`
}

// ScheduleConfig defines how often checks run.
type ScheduleConfig struct {
	CheckInterval time.Duration `yaml:"check_interval"`
	ReleaseDelay  time.Duration `yaml:"release_delay"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // auto, console, text, json
}

// DefaultUserAgent is sent to the API when discogs.user_agent is unset.
// The CLI overwrites the version suffix at build time.
var DefaultUserAgent = "discogs-alert/dev"

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config content. Environment variables are expanded
// before decoding.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied, used when no
// config file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// HasCatalogSources reports whether checks need the authenticated API.
func (c *Config) HasCatalogSources() bool {
	return c.Alerts.WantlistUser != "" || len(c.Alerts.ListIDs) > 0
}

func applyDefaults(cfg *Config) {
	applyDiscogsDefaults(&cfg.Discogs)
	applyBrowserDefaults(&cfg.Browser)
	applyScheduleDefaults(&cfg.Schedule)
	applyServerDefaults(&cfg.Server)
	applyLoggingDefaults(&cfg.Logging)
}

func applyDiscogsDefaults(d *DiscogsConfig) {
	if d.APIURL == "" {
		d.APIURL = "https://api.discogs.com"
	}
	if d.SiteURL == "" {
		d.SiteURL = "https://www.discogs.com"
	}
	if d.UserAgent == "" {
		d.UserAgent = DefaultUserAgent
	}
	if d.Timeout == 0 {
		d.Timeout = 30 * time.Second
	}
}

func applyBrowserDefaults(b *BrowserConfig) {
	if b.Headless == nil {
		headless := true
		b.Headless = &headless
	}
	if b.WaitSelector == "" {
		b.WaitSelector = "body"
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CheckInterval == 0 {
		s.CheckInterval = 30 * time.Minute
	}
	if s.ReleaseDelay == 0 {
		s.ReleaseDelay = 2 * time.Second
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "auto"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Schedule.CheckInterval < 0 {
		errs = append(errs, fmt.Errorf("schedule.check_interval must be positive"))
	}
	if cfg.Schedule.ReleaseDelay < 0 {
		errs = append(errs, fmt.Errorf("schedule.release_delay must not be negative"))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	switch cfg.Logging.Format {
	case "auto", "console", "text", "json":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be auto, console, text or json (got %q)", cfg.Logging.Format),
		)
	}

	errs = append(errs, validateFilter("alerts.defaults", cfg.Alerts.Defaults)...)

	for i, r := range cfg.Alerts.Releases {
		field := fmt.Sprintf("alerts.releases[%d]", i)
		if r.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s.id must be a positive release id", field))
		}
		if r.MaxPrice < 0 {
			errs = append(errs, fmt.Errorf("%s.max_price must not be negative", field))
		}
		errs = append(errs, validateCondition(field+".min_media_condition", r.MinMediaCondition)...)
		errs = append(errs, validateCondition(field+".min_sleeve_condition", r.MinSleeveCondition)...)
	}

	for i, id := range cfg.Alerts.ListIDs {
		if id <= 0 {
			errs = append(errs, fmt.Errorf("alerts.list_ids[%d] must be a positive list id", i))
		}
	}

	return errors.Join(errs...)
}

func validateFilter(field string, f FilterConfig) []error {
	var errs []error
	if f.MaxPrice < 0 {
		errs = append(errs, fmt.Errorf("%s.max_price must not be negative", field))
	}
	if f.MinSellerRating < 0 || f.MinSellerRating > 100 {
		errs = append(errs, fmt.Errorf("%s.min_seller_rating must be between 0 and 100", field))
	}
	errs = append(errs, validateCondition(field+".min_media_condition", f.MinMediaCondition)...)
	errs = append(errs, validateCondition(field+".min_sleeve_condition", f.MinSleeveCondition)...)
	return errs
}

func validateCondition(field, value string) []error {
	if value == "" {
		return nil
	}
	if !domain.ParseCondition(value).Valid() {
		return []error{fmt.Errorf("%s: unknown condition %q", field, value)}
	}
	return nil
}
