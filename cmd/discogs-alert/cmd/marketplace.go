package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/discogs-alert/internal/config"
	"github.com/donaldgifford/discogs-alert/internal/discogs"
	"github.com/donaldgifford/discogs-alert/internal/engine"
	"github.com/donaldgifford/discogs-alert/pkg/logger"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

func newBrowserSession(ctx context.Context, cfg *config.Config) (*discogs.BrowserSession, error) {
	b := cfg.Browser
	return discogs.NewBrowserSession(ctx,
		discogs.WithHeadless(b.IsHeadless()),
		discogs.WithExecPath(b.ExecPath),
		discogs.WithBrowserUserAgent(b.UserAgent),
		discogs.WithSettleDelay(b.SettleDelay),
		discogs.WithWaitSelector(b.WaitSelector),
	)
}

func newAnonClient(r discogs.Renderer, cfg *config.Config, log *slog.Logger) *discogs.AnonClient {
	return discogs.NewAnonClient(r,
		discogs.WithSiteURL(cfg.Discogs.SiteURL),
		discogs.WithAnonLogger(logger.Component(log, "marketplace")),
	)
}

// parseConditionFlag accepts an empty value or any grade ParseCondition
// recognises.
func parseConditionFlag(flag, value string) (domain.Condition, error) {
	if value == "" {
		return domain.ConditionUnknown, nil
	}
	c := domain.ParseCondition(value)
	if !c.Valid() {
		return domain.ConditionUnknown, fmt.Errorf("--%s: unknown condition %q", flag, value)
	}
	return c, nil
}

func marketplaceCmd(a *app) *cobra.Command {
	var (
		maxPrice  float64
		minMedia  string
		minSleeve string
	)

	cmd := &cobra.Command{
		Use:   "marketplace <release-id>",
		Short: "List marketplace offers for a release",
		Long: "Render the release's marketplace page in a headless browser and\n" +
			"print the listings, cheapest first. No token is needed.",
		Example: `  # All offers
  discogs-alert marketplace 1158412

  # Offers up to 25 in at least Very Good Plus
  discogs-alert marketplace 1158412 --max-price 25 --min-media VG+`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if maxPrice < 0 {
				return errors.New("--max-price must not be negative")
			}
			media, err := parseConditionFlag("min-media", minMedia)
			if err != nil {
				return err
			}
			sleeve, err := parseConditionFlag("min-sleeve", minSleeve)
			if err != nil {
				return err
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			log := a.newLogger(cfg)

			browser, err := newBrowserSession(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			anon := newAnonClient(browser, cfg, log)
			defer func() {
				if cerr := anon.Close(); cerr != nil {
					log.Warn("closing browser", "error", cerr)
				}
			}()

			ls, err := anon.GetMarketplaceListings(cmd.Context(), id)
			if err != nil {
				return err
			}

			rule := engine.Rule{
				MaxPrice:           maxPrice,
				MinMediaCondition:  media,
				MinSleeveCondition: sleeve,
			}
			if maxPrice > 0 || minMedia != "" || minSleeve != "" {
				ls = ls.Filter(func(l domain.Listing) bool { return rule.Match(&l) })
			}

			out := marketplaceListings{URL: anon.MarketplaceURL(id), Listings: ls}
			return a.render(cmd.OutOrStdout(), nil, out, func(w io.Writer) error {
				if ls.Len() == 0 {
					_, err := fmt.Fprintln(w, "No listings found.")
					return err
				}
				return printListingsTable(w, ls)
			})
		},
	}

	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "only show listings at or below this price")
	cmd.Flags().StringVar(&minMedia, "min-media", "", "minimum media condition (e.g. VG+, NM)")
	cmd.Flags().StringVar(&minSleeve, "min-sleeve", "", "minimum sleeve condition")

	return cmd
}
