// Package main is the entry point for discogs-alert.
package main

import (
	"os"

	"github.com/donaldgifford/discogs-alert/cmd/discogs-alert/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
