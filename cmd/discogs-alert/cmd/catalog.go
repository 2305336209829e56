package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

func releaseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "release <id>",
		Short:   "Show a release",
		Example: `  discogs-alert release 249504`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.apiSetup()
			if err != nil {
				return err
			}

			r, err := c.GetRelease(cmd.Context(), id)
			if err != nil {
				return err
			}
			if r == nil {
				return fmt.Errorf("release %d: %w", id, errNotFound)
			}

			return a.render(cmd.OutOrStdout(), c, r, func(w io.Writer) error {
				return printReleaseDetail(w, r)
			})
		},
	}
}

func listingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "listing <id>",
		Short:   "Show a marketplace listing",
		Example: `  discogs-alert listing 172723812`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q: must be a positive integer", args[0])
			}
			c, err := a.apiSetup()
			if err != nil {
				return err
			}

			l, err := c.GetListing(cmd.Context(), id)
			if err != nil {
				return err
			}
			if l == nil {
				return fmt.Errorf("listing %d: %w", id, errNotFound)
			}

			return a.render(cmd.OutOrStdout(), c, l, func(w io.Writer) error {
				return printListingDetail(w, l)
			})
		},
	}
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list <id>",
		Short:   "Show a user list and its releases",
		Example: `  discogs-alert list 3741`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.apiSetup()
			if err != nil {
				return err
			}

			l, err := c.GetList(cmd.Context(), id)
			if err != nil {
				return err
			}
			if l == nil {
				return fmt.Errorf("list %d: %w", id, errNotFound)
			}

			return a.render(cmd.OutOrStdout(), c, l, func(w io.Writer) error {
				return printUserList(w, l)
			})
		},
	}
}

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "stats <release-id>",
		Short:   "Show marketplace statistics for a release",
		Example: `  discogs-alert stats 249504`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.apiSetup()
			if err != nil {
				return err
			}

			s, err := c.GetReleaseStats(cmd.Context(), id)
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("stats for release %d: %w", id, errNotFound)
			}

			return a.render(cmd.OutOrStdout(), c, s, func(w io.Writer) error {
				return printStats(w, id, s)
			})
		},
	}
}

func wantlistCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "wantlist <username>",
		Short:   "Show the first page of a user's wantlist",
		Example: `  discogs-alert wantlist rodneyfool`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.apiSetup()
			if err != nil {
				return err
			}

			wl, err := c.GetWantlist(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if wl == nil {
				return fmt.Errorf("wantlist for %s: %w", args[0], errNotFound)
			}

			return a.render(cmd.OutOrStdout(), c, wl, func(w io.Writer) error {
				if len(wl.Wants) == 0 {
					_, err := fmt.Fprintln(w, "Wantlist is empty.")
					return err
				}
				return printWantlist(w, wl)
			})
		},
	}
}

// marketplaceListings is the JSON shape of the marketplace command.
type marketplaceListings struct {
	URL string `json:"url"`
	*domain.Listings
}
