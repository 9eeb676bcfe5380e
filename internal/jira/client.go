package jira

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gi8lino/jirafred/internal/query"
)

// userAgent identifies the workflow on every API request.
const userAgent = "Jira for Alfred (Mozilla/5.0)"

// APIVersion selects which search endpoint and envelope shape to use.
// The shape is chosen explicitly from configuration, never sniffed from
// the response.
type APIVersion string

const (
	APIVersionCloud APIVersion = "cloud"  // /search/jql, top-level issues
	APIVersionV9LTS APIVersion = "v9-lts" // /search, issues nested in sections
)

// Searcher is an interface for Jira search API calls.
type Searcher interface {
	Search(ctx context.Context, compiled query.Compiled) ([]Issue, error)
}

// Client handles communication with the Jira REST API.
type Client struct {
	APIURL  *url.URL   // Base API URL (must include /rest/api/X)
	Version APIVersion // Envelope/endpoint selection
	Client  *http.Client
	auth    AuthFunc
}

// NewClient returns a Jira client with the given base URL, authentication
// function, and per-request timeout.
func NewClient(apiURL *url.URL, version APIVersion, auth AuthFunc, timeout time.Duration) *Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		// gzip is advertised and decoded by hand so the Content-Encoding
		// header stays visible
		DisableCompression: true,
	}
	return &Client{
		APIURL:  apiURL,
		Version: version,
		Client:  &http.Client{Transport: tr, Timeout: timeout},
		auth:    auth,
	}
}

// Search executes one compiled JQL search and returns the matching issues.
// Failures are classified: *TransportError for network/HTTP errors,
// *MalformedResponseError for undecodable success responses. Zero matches
// is a valid result, not an error.
func (c *Client) Search(ctx context.Context, compiled query.Compiled) ([]Issue, error) {
	params := url.Values{}
	params.Set("fields", compiled.Fields)
	params.Set("jql", compiled.JQL)
	params.Set("maxResults", strconv.Itoa(compiled.MaxResults))

	endpoint := "search/jql"
	if c.Version == APIVersionV9LTS {
		endpoint = "search"
	}

	body, err := c.doRequest(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	return c.decodeIssues(body)
}

// doRequest performs one authenticated GET and returns the decompressed body.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	relURL, err := url.Parse(path)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("parse path: %w", err)}
	}
	fullURL := c.APIURL.ResolveReference(relURL).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("create request: %w", err)}
	}

	c.auth(req) // apply authentication

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			Status:  resp.StatusCode,
			Message: upstreamMessage(respBody),
		}
	}

	if resp.Header.Get("Content-Encoding") == "gzip" {
		return gunzip(respBody)
	}
	return respBody, nil
}

// decodeIssues extracts the issue collection from the envelope shape of the
// configured API version.
func (c *Client) decodeIssues(body []byte) ([]Issue, error) {
	if c.Version == APIVersionV9LTS {
		var result SectionedSearchResult
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
		}
		if result.Sections == nil {
			return nil, &MalformedResponseError{Reason: "missing sections envelope"}
		}
		var issues []Issue
		for _, section := range result.Sections {
			issues = append(issues, section.Issues...)
		}
		return issues, nil
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}
	if result.Issues == nil {
		return nil, &MalformedResponseError{Reason: "missing issues envelope"}
	}
	return result.Issues, nil
}

// upstreamMessage extracts the first error message from a Jira error body,
// falling back to a generic description when that shape is absent.
func upstreamMessage(body []byte) string {
	var parsed ErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.ErrorMessages) > 0 {
		return parsed.ErrorMessages[0]
	}
	return "Jira returned an error response"
}

// gunzip decompresses a gzip-encoded response body.
func gunzip(body []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, &MalformedResponseError{Reason: "invalid gzip body", Err: err}
	}
	defer zr.Close() // nolint:errcheck

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, &MalformedResponseError{Reason: "invalid gzip body", Err: err}
	}
	return out, nil
}
