package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the artists collection of the Spotify Web API.
const DefaultBaseURL = "https://api.spotify.com/v1/artists"

const (
	msgArtistFailed    = "invalid identifier or service unavailable"
	msgTopTracksFailed = "invalid identifier or country code or service unavailable"
	msgInvalidSort     = "invalid sort option"
)

// SortBy selects the ordering of a GetArtists result.
type SortBy string

const (
	SortDefault      SortBy = "default"
	SortByName       SortBy = "name"
	SortByPopularity SortBy = "popularity"
)

// Doer performs a single HTTP request. *http.Client satisfies it; tests may
// substitute a fake transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a read-only client for the Spotify artist catalog. All fields are
// fixed at construction, so a Client is safe for concurrent use. Every
// operation issues exactly one synchronous GET and never retries.
type Client struct {
	baseURL    string
	httpClient Doer
	creds      CredentialProvider
	logger     zerolog.Logger
}

// NewClient returns a Client against the production API. creds may be nil, in
// which case requests are sent unauthenticated.
func NewClient(creds CredentialProvider) *Client {
	return NewClientWithBaseURL(creds, DefaultBaseURL)
}

// NewClientWithBaseURL returns a Client whose artists collection lives at
// baseURL, e.g. an httptest server.
func NewClientWithBaseURL(creds CredentialProvider, baseURL string) *Client {
	return NewClientWithTransport(creds, baseURL, &http.Client{Timeout: 30 * time.Second})
}

// NewClientWithTransport additionally replaces the HTTP transport.
func NewClientWithTransport(creds CredentialProvider, baseURL string, transport Doer) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: transport,
		creds:      creds,
		logger:     log.With().Str("component", "spotify").Logger(),
	}
}

// GetArtist fetches a single artist by its Spotify ID.
func (c *Client) GetArtist(ctx context.Context, artistID string) (*Artist, error) {
	body, err := c.get(ctx, c.baseURL+"/"+artistID, msgArtistFailed)
	if err != nil {
		return nil, err
	}

	var artist Artist
	if err := json.Unmarshal(body, &artist); err != nil {
		return nil, &ClientError{Message: msgArtistFailed, Err: err}
	}
	return &artist, nil
}

// GetArtists fetches several artists in one call and orders the result
// according to sortBy: SortDefault keeps the server order, SortByName sorts
// ascending by name, SortByPopularity sorts most popular first.
func (c *Client) GetArtists(ctx context.Context, ids []string, sortBy SortBy) ([]Artist, error) {
	switch sortBy {
	case SortDefault, SortByName, SortByPopularity:
	default:
		return nil, &ClientError{Message: msgInvalidSort}
	}

	params := url.Values{"ids": {strings.Join(ids, ",")}}
	body, err := c.get(ctx, c.baseURL+"?"+params.Encode(), msgArtistFailed)
	if err != nil {
		return nil, err
	}

	var resp artistsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ClientError{Message: msgArtistFailed, Err: err}
	}

	artists := resp.Artists
	switch sortBy {
	case SortByName:
		sort.SliceStable(artists, func(i, j int) bool {
			return artists[i].Name < artists[j].Name
		})
	case SortByPopularity:
		// Most popular first.
		sort.SliceStable(artists, func(i, j int) bool {
			return artists[i].Popularity > artists[j].Popularity
		})
	}
	return artists, nil
}

// GetAlbumTitles fetches up to limit album titles for an artist, in the order
// the server returns them. Truncation to limit is left to the server.
func (c *Client) GetAlbumTitles(ctx context.Context, artistID string, limit int) ([]string, error) {
	params := url.Values{"limit": {fmt.Sprint(limit)}}
	body, err := c.get(ctx, c.baseURL+"/"+artistID+"/albums?"+params.Encode(), msgArtistFailed)
	if err != nil {
		return nil, err
	}

	var resp albumsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ClientError{Message: msgArtistFailed, Err: err}
	}

	titles := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		titles = append(titles, item.Name)
	}
	return titles, nil
}

// GetTopTracks fetches an artist's top tracks for a two-letter country code
// as (title, popularity) pairs. The server already orders them by popularity,
// so the client keeps its order untouched.
func (c *Client) GetTopTracks(ctx context.Context, artistID, country string) ([]TrackPopularity, error) {
	params := url.Values{"country": {country}}
	body, err := c.get(ctx, c.baseURL+"/"+artistID+"/top-tracks?"+params.Encode(), msgTopTracksFailed)
	if err != nil {
		return nil, err
	}

	var resp topTracksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ClientError{Message: msgTopTracksFailed, Err: err}
	}
	return resp.Tracks, nil
}

func (c *Client) get(ctx context.Context, reqURL, failMsg string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &ClientError{Message: failMsg, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return nil, &ClientError{Message: failMsg, Err: err}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Message: failMsg, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ClientError{Message: failMsg, Err: err}
	}

	c.logger.Debug().
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Msg("GET")

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{Message: failMsg, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}
	return body, nil
}
