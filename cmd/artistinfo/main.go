package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mmikolajczak/spotify-client/internal/config"
	"github.com/mmikolajczak/spotify-client/internal/logger"
	"github.com/mmikolajczak/spotify-client/internal/spotify"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	artistRef := flag.String("artist", "", "Spotify artist id, URL, or URI (required)")
	country := flag.String("country", "PL", "two-letter country code for top tracks")
	albums := flag.Int("albums", 10, "number of album titles to fetch")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Configuration error")
	}
	logger.Init(cfg.LogLevel, cfg.Debug)

	if *artistRef == "" {
		flag.Usage()
		log.Fatal().Msg("-artist is required")
	}

	artistID, err := spotify.ExtractArtistID(*artistRef)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid artist reference")
	}

	var creds spotify.CredentialProvider
	if cfg.HasCredentials() {
		creds = spotify.ClientCredentials(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	} else {
		log.Warn().Msg("No Spotify credentials configured, sending unauthenticated requests")
	}

	client := spotify.NewClientWithBaseURL(creds, cfg.APIBaseURL)
	ctx := context.Background()

	artist, err := client.GetArtist(ctx, artistID)
	if err != nil {
		log.Fatal().Err(err).Str("artist_id", artistID).Msg("Fetching artist failed")
	}

	titles, err := client.GetAlbumTitles(ctx, artistID, *albums)
	if err != nil {
		log.Fatal().Err(err).Str("artist_id", artistID).Msg("Fetching album titles failed")
	}

	tracks, err := client.GetTopTracks(ctx, artistID, *country)
	if err != nil {
		log.Fatal().Err(err).Str("artist_id", artistID).Msg("Fetching top tracks failed")
	}

	fmt.Println("Artist:", artist.Name)
	fmt.Printf("First %d album titles: [%s]\n", *albums, strings.Join(titles, ", "))
	fmt.Println("Most popular songs:", formatTracks(tracks))
}

func formatTracks(tracks []spotify.TrackPopularity) string {
	parts := make([]string, 0, len(tracks))
	for _, t := range tracks {
		parts = append(parts, fmt.Sprintf("[%s, %d]", t.Name, t.Popularity))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
