package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/discogs-alert/internal/api/client"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

const defaultServerURL = "http://localhost:8080"

func (a *app) serverClient() *client.Client {
	return client.New(a.v.GetString("server"))
}

// serverCmd groups commands that talk to a running "watch" process.
func serverCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Talk to a running watcher",
		Long: "Commands that call the HTTP API of a running 'discogs-alert watch'\n" +
			"process instead of Discogs directly.",
	}

	cmd.PersistentFlags().String("server", defaultServerURL, "watcher base URL (env DISCOGS_ALERT_SERVER)")

	cmd.AddCommand(
		serverCheckCmd(a),
		serverRateLimitCmd(a),
		serverMarketplaceCmd(a),
		serverReadyCmd(a),
	)
	return cmd
}

func serverCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run a check on the watcher now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.serverClient().TriggerCheck(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), nil, resp, func(w io.Writer) error {
				return printCheckResult(w, &resp.Result)
			})
		},
	}
}

func serverRateLimitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ratelimit",
		Short: "Show the API quota the watcher last saw",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.serverClient().RateLimit(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), nil, resp, func(w io.Writer) error {
				if !resp.Observed {
					_, err := fmt.Fprintln(w, "No API requests made yet.")
					return err
				}
				return printRateLimit(w, resp.RateLimit)
			})
		},
	}
}

func serverMarketplaceCmd(a *app) *cobra.Command {
	var maxPrice float64

	cmd := &cobra.Command{
		Use:   "marketplace <release-id>",
		Short: "List marketplace offers through the watcher's browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := a.serverClient().MarketplaceListings(cmd.Context(), id, maxPrice)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), nil, resp, func(w io.Writer) error {
				if resp.Total == 0 {
					_, err := fmt.Fprintln(w, "No listings found.")
					return err
				}
				return printListingsTable(w, &domain.Listings{ReleaseID: resp.ReleaseID, Items: resp.Listings})
			})
		},
	}

	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "only show listings at or below this price")

	return cmd
}

func serverReadyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Exit non-zero unless the watcher is ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.serverClient().Ready(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "ready")
			return err
		},
	}
}
