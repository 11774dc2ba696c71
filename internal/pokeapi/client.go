// Package pokeapi is a minimal client for the upstream Pokemon metadata API.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	// DefaultTimeout is the total request timeout.
	DefaultTimeout = 10 * time.Second
	// DialTimeout is the connection timeout.
	DialTimeout = 5 * time.Second
	// maxBodyBytes caps how much of an upstream document is read.
	maxBodyBytes = 4 << 20

	userAgent = "pokecatch/1.0"
)

var (
	// ErrNotFound indicates the upstream API has no such Pokemon.
	ErrNotFound = errors.New("pokemon not found upstream")
	// ErrBadResponse indicates an unexpected status or an invalid body.
	ErrBadResponse = errors.New("unexpected upstream response")
)

// NewHTTPClient creates an HTTP client configured for upstream lookups.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   5 * time.Second,
			ResponseHeaderTimeout: timeout,
			MaxIdleConns:          50,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// Client fetches Pokemon documents from the upstream API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. A nil httpClient uses NewHTTPClient(DefaultTimeout).
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultTimeout)
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetPokemon returns the raw JSON document for name.
func (c *Client) GetPokemon(ctx context.Context, name string) (json.RawMessage, error) {
	endpoint := c.baseURL + "/pokemon/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request pokemon %q: %w", name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrBadResponse)
	}

	return json.RawMessage(body), nil
}
