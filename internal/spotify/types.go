package spotify

// Artist mirrors the Spotify artist object. Fields are decoded straight from
// the response body and never modified afterwards.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Popularity int      `json:"popularity"`
	Genres     []string `json:"genres"`
	Followers  struct {
		Total int `json:"total"`
	} `json:"followers"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

// TrackPopularity is one (track title, popularity) pair from a top-tracks
// response, kept in the order the server returned it.
type TrackPopularity struct {
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
}

type artistsResponse struct {
	Artists []Artist `json:"artists"`
}

type albumsResponse struct {
	Items []struct {
		Name string `json:"name"`
	} `json:"items"`
}

type topTracksResponse struct {
	Tracks []TrackPopularity `json:"tracks"`
}
