package google

import (
	"os"
	"strings"

	"golang.org/x/oauth2"
)

// AccessTokenEnv is the environment variable read when no token is passed.
const AccessTokenEnv = "GOOGLE_OAUTH_ACCESS_TOKEN"

// NewTokenSource creates an oauth2.TokenSource serving a fixed bearer token.
// Tokens are minted and refreshed by the caller; this process never refreshes.
func NewTokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
}

// ResolveAccessToken returns explicit if set, else the AccessTokenEnv value.
// Returns ErrUnauthorized when neither is present.
func ResolveAccessToken(explicit string) (string, error) {
	if tok := strings.TrimSpace(explicit); tok != "" {
		return tok, nil
	}
	if tok := strings.TrimSpace(os.Getenv(AccessTokenEnv)); tok != "" {
		return tok, nil
	}
	return "", ErrUnauthorized
}
