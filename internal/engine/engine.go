// Package engine checks watched releases for marketplace listings that
// match their alert rules and delivers new matches to a notifier.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/donaldgifford/discogs-alert/internal/metrics"
	"github.com/donaldgifford/discogs-alert/internal/notify"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// ErrCheckInProgress is returned when a check is requested while another
// one is still running.
var ErrCheckInProgress = errors.New("check already in progress")

// ErrNoCatalog is returned when wantlist or list sources are configured
// but the engine has no API client to read them.
var ErrNoCatalog = errors.New("wantlist or list sources configured without an API client")

// Catalog is the authenticated API surface the engine reads watch sources
// from.
type Catalog interface {
	GetWantlist(ctx context.Context, username string) (*domain.Wantlist, error)
	GetList(ctx context.Context, id int) (*domain.UserList, error)
}

// Marketplace returns the listings currently for sale for a release.
type Marketplace interface {
	GetMarketplaceListings(ctx context.Context, releaseID int) (*domain.Listings, error)
}

// CheckResult summarises one check run.
type CheckResult struct {
	Releases int `json:"releases"`
	Listings int `json:"listings"`
	Matches  int `json:"matches"`
	Notified int `json:"notified"`
	Errors   int `json:"errors"`
}

// Engine walks the configured releases, wantlist and lists, applies each
// release's rule to its marketplace listings and notifies new matches.
type Engine struct {
	catalog     Catalog
	marketplace Marketplace
	notifier    notify.Notifier
	log         *slog.Logger

	wantlistUser string
	listIDs      []int
	targets      []Target
	defaultRule  Rule
	releaseDelay time.Duration
	siteURL      string

	// mu serialises checks and guards seen.
	mu   sync.Mutex
	seen map[int64]struct{}
}

// NewEngine creates a new Engine. catalog may be nil when only explicit
// release targets are configured.
func NewEngine(
	c Catalog,
	m Marketplace,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		catalog:      c,
		marketplace:  m,
		notifier:     n,
		log:          slog.Default(),
		releaseDelay: 2 * time.Second,
		siteURL:      "https://www.discogs.com",
		seen:         make(map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithWantlistUser watches every release on the user's wantlist.
func WithWantlistUser(username string) EngineOption {
	return func(e *Engine) {
		e.wantlistUser = username
	}
}

// WithListIDs watches every release on the given user lists.
func WithListIDs(ids ...int) EngineOption {
	return func(e *Engine) {
		e.listIDs = ids
	}
}

// WithTargets sets explicitly configured releases with their own rules.
func WithTargets(t ...Target) EngineOption {
	return func(e *Engine) {
		e.targets = t
	}
}

// WithDefaultRule sets the rule for releases from the wantlist and lists.
func WithDefaultRule(r Rule) EngineOption {
	return func(e *Engine) {
		e.defaultRule = r
	}
}

// WithReleaseDelay sets the pause between marketplace page loads.
func WithReleaseDelay(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.releaseDelay = d
	}
}

// WithSiteURL sets the base used to resolve relative listing links.
func WithSiteURL(u string) EngineOption {
	return func(e *Engine) {
		e.siteURL = u
	}
}

// RunCheck runs one full pass over every watched release. Failures for a
// single release are logged and counted; the pass continues.
func (eng *Engine) RunCheck(ctx context.Context) (*CheckResult, error) {
	if !eng.mu.TryLock() {
		return nil, ErrCheckInProgress
	}
	defer eng.mu.Unlock()

	start := time.Now()
	metrics.CheckRunsTotal.Inc()
	defer func() {
		metrics.CheckDuration.Observe(time.Since(start).Seconds())
		metrics.LastCheckTimestamp.Set(float64(time.Now().Unix()))
	}()

	res := &CheckResult{}

	targets, err := eng.collectTargets(ctx, res)
	if err != nil {
		return res, err
	}
	res.Releases = len(targets)

	eng.log.Info("check starting", "releases", len(targets))

	for i := range targets {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		if err := eng.checkRelease(ctx, &targets[i], res); err != nil {
			res.Errors++
			eng.log.Error("release check failed",
				"release_id", targets[i].ReleaseID,
				"error", err,
			)
		}

		if i < len(targets)-1 && eng.releaseDelay > 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(eng.releaseDelay):
			}
		}
	}

	eng.log.Info("check complete",
		"releases", res.Releases,
		"listings", res.Listings,
		"matches", res.Matches,
		"notified", res.Notified,
		"errors", res.Errors,
		"duration", time.Since(start),
	)

	return res, nil
}

// collectTargets merges explicit targets, wantlist wants and list items.
// Each release appears once; explicit rules take precedence. A source that
// cannot be fetched is counted as an error and skipped.
func (eng *Engine) collectTargets(ctx context.Context, res *CheckResult) ([]Target, error) {
	targets := make([]Target, 0, len(eng.targets))
	index := make(map[int]struct{})

	add := func(t Target) {
		if t.ReleaseID <= 0 {
			return
		}
		if _, ok := index[t.ReleaseID]; ok {
			return
		}
		index[t.ReleaseID] = struct{}{}
		targets = append(targets, t)
	}

	for _, t := range eng.targets {
		add(t)
	}

	if eng.wantlistUser == "" && len(eng.listIDs) == 0 {
		return targets, nil
	}
	if eng.catalog == nil {
		return nil, ErrNoCatalog
	}

	if eng.wantlistUser != "" {
		wl, err := eng.catalog.GetWantlist(ctx, eng.wantlistUser)
		switch {
		case err != nil || wl == nil:
			res.Errors++
			metrics.CheckErrorsTotal.WithLabelValues("wantlist").Inc()
			eng.log.Error("wantlist unavailable", "user", eng.wantlistUser, "error", err)
		default:
			for _, w := range wl.Wants {
				add(Target{
					ReleaseID: w.BasicInformation.ID,
					Title:     wantTitle(&w.BasicInformation),
					Rule:      eng.defaultRule,
				})
			}
		}
	}

	for _, id := range eng.listIDs {
		list, err := eng.catalog.GetList(ctx, id)
		switch {
		case err != nil || list == nil:
			res.Errors++
			metrics.CheckErrorsTotal.WithLabelValues("list").Inc()
			eng.log.Error("list unavailable", "list_id", id, "error", err)
		default:
			for i := range list.Items {
				add(Target{
					ReleaseID: list.Items[i].ID,
					Title:     list.Items[i].Name(),
					Rule:      eng.defaultRule,
				})
			}
		}
	}

	return targets, nil
}

func wantTitle(b *domain.BasicInformation) string {
	if len(b.Artists) > 0 {
		return b.Artists[0].Name + " - " + b.Title
	}
	return b.Title
}

func (eng *Engine) checkRelease(ctx context.Context, t *Target, res *CheckResult) error {
	listings, err := eng.marketplace.GetMarketplaceListings(ctx, t.ReleaseID)
	if err != nil {
		metrics.CheckErrorsTotal.WithLabelValues("marketplace").Inc()
		return fmt.Errorf("fetching listings: %w", err)
	}
	if listings == nil {
		listings = domain.NewListings(t.ReleaseID)
	}
	res.Listings += listings.Len()

	matched := listings.Filter(func(l domain.Listing) bool {
		return t.Rule.Match(&l)
	})
	metrics.ListingsMatchedTotal.Add(float64(matched.Len()))
	res.Matches += matched.Len()

	fresh := eng.unseen(matched)
	if len(fresh) == 0 {
		eng.log.Debug("no new matches",
			"release_id", t.ReleaseID,
			"listings", listings.Len(),
			"matches", matched.Len(),
		)
		return nil
	}

	title := t.Title
	if title == "" {
		title = fresh[0].Title
	}

	if err := eng.send(ctx, title, fresh); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		metrics.CheckErrorsTotal.WithLabelValues("notify").Inc()
		return err
	}

	for _, l := range fresh {
		eng.seen[l.ID] = struct{}{}
	}
	res.Notified += len(fresh)
	metrics.AlertsFiredTotal.Add(float64(len(fresh)))

	return nil
}

// unseen drops listings already alerted on and listings without an id,
// which cannot be linked or deduplicated.
func (eng *Engine) unseen(ls *domain.Listings) []domain.Listing {
	out := make([]domain.Listing, 0, ls.Len())
	for _, l := range ls.Items {
		if l.ID == 0 {
			continue
		}
		if _, ok := eng.seen[l.ID]; ok {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Seen reports how many listings have been alerted on by this process.
func (eng *Engine) Seen() int {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return len(eng.seen)
}
