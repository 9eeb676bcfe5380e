package jira

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// AuthFunc applies authentication to an outgoing request.
type AuthFunc func(r *http.Request)

// NewBasicAuth returns an AuthFunc setting a Basic Authorization header
// from the given username and API token. Both values are trimmed before
// encoding since Alfred passes environment values through verbatim.
func NewBasicAuth(username, token string) AuthFunc {
	credentials := base64.StdEncoding.EncodeToString(
		[]byte(strings.TrimSpace(username) + ":" + strings.TrimSpace(token)),
	)
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Basic "+credentials)
	}
}

// NewBearerAuth returns an AuthFunc setting a Bearer Authorization header.
// Self-hosted deployments use personal access tokens instead of Basic auth.
func NewBearerAuth(token string) AuthFunc {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}
}

// ResolveAuth returns the appropriate AuthFunc based on provided credentials.
// It supports either Bearer token or Basic (username + API token) authentication.
func ResolveAuth(bearerToken, username, token string) (auth AuthFunc, method string, err error) {
	switch {
	case bearerToken != "":
		return NewBearerAuth(bearerToken), "Bearer", nil
	case username != "" && token != "":
		return NewBasicAuth(username, token), "Basic", nil
	default:
		return nil, "", fmt.Errorf("no valid auth method configured: must provide either bearer token or username+token")
	}
}
