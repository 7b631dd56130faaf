package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArtistID(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{
			name: "bare id",
			ref:  "3qm84nBOXUEQ2vnTfUTTFC",
			want: "3qm84nBOXUEQ2vnTfUTTFC",
		},
		{
			name: "share url",
			ref:  "https://open.spotify.com/artist/3qm84nBOXUEQ2vnTfUTTFC",
			want: "3qm84nBOXUEQ2vnTfUTTFC",
		},
		{
			name: "share url with query",
			ref:  "https://open.spotify.com/artist/3qm84nBOXUEQ2vnTfUTTFC?si=abc123",
			want: "3qm84nBOXUEQ2vnTfUTTFC",
		},
		{
			name: "uri",
			ref:  "spotify:artist:3qm84nBOXUEQ2vnTfUTTFC",
			want: "3qm84nBOXUEQ2vnTfUTTFC",
		},
		{
			name: "surrounding whitespace",
			ref:  "  3qm84nBOXUEQ2vnTfUTTFC\n",
			want: "3qm84nBOXUEQ2vnTfUTTFC",
		},
		{
			name:    "empty",
			ref:     "",
			wantErr: true,
		},
		{
			name:    "track url",
			ref:     "https://open.spotify.com/track/0G21yYKMZoHa30cYVi1iA8",
			wantErr: true,
		},
		{
			name:    "unrelated url",
			ref:     "https://example.com/foo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractArtistID(tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
