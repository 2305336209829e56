package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/discogs-alert/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func init() {
	config.DefaultUserAgent = "discogs-alert/" + Version
}

func versionCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "discogs-alert "+Version)
			return err
		},
	}
}
