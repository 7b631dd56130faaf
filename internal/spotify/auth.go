package spotify

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenURL is the Spotify accounts service token endpoint.
const DefaultTokenURL = "https://accounts.spotify.com/api/token"

// CredentialProvider supplies a bearer token for outgoing requests. A nil
// provider on the Client means requests go out without an Authorization
// header.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken returns a provider that always yields the given token.
func StaticToken(token string) CredentialProvider {
	return staticToken(token)
}

type staticToken string

func (s staticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

// ClientCredentials returns a provider that obtains app tokens from the
// Spotify accounts service using the OAuth2 client-credentials grant. Token
// caching and refresh are handled by the oauth2 token source.
func ClientCredentials(clientID, clientSecret string) CredentialProvider {
	return ClientCredentialsWithTokenURL(clientID, clientSecret, DefaultTokenURL)
}

// ClientCredentialsWithTokenURL points the grant at a custom token endpoint,
// e.g. an httptest server.
func ClientCredentialsWithTokenURL(clientID, clientSecret, tokenURL string) CredentialProvider {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return &tokenSourceProvider{src: cfg.TokenSource(context.Background())}
}

type tokenSourceProvider struct {
	src oauth2.TokenSource
}

func (p *tokenSourceProvider) Token(context.Context) (string, error) {
	tok, err := p.src.Token()
	if err != nil {
		return "", fmt.Errorf("fetching access token: %w", err)
	}
	return tok.AccessToken, nil
}
