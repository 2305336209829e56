package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

func TestParseConditionFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    domain.Condition
		wantErr bool
	}{
		{name: "empty means no minimum", value: "", want: domain.ConditionUnknown},
		{name: "abbreviation", value: "VG+", want: domain.ConditionVeryGoodPlus},
		{name: "full name", value: "Near Mint (NM or M-)", want: domain.ConditionNearMint},
		{name: "unknown", value: "xyz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseConditionFlag("min-media", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), `--min-media: unknown condition "xyz"`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Bad filter flags fail before a browser is started.
func TestMarketplace_RejectsBadFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "media", args: []string{"--min-media", "xyz"}, wantErr: "--min-media: unknown condition"},
		{name: "sleeve", args: []string{"--min-sleeve", "shiny"}, wantErr: "--min-sleeve: unknown condition"},
		{name: "negative price", args: []string{"--max-price", "-1"}, wantErr: "--max-price must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"marketplace", "1158412", "--config", "/nonexistent/config.yaml"}, tt.args...)
			_, err := run(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
