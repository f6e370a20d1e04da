// Package pubky is the reference storage adapter: it speaks plain HTTP to a
// Pubky homeserver and satisfies transport.Storage for both unauthenticated
// discovery and session-scoped writes.
//
// Session establishment (signup, signin, token refresh) is out of scope;
// callers obtain a session token elsewhere and hand it in.
package pubky

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vitwit/paykit/transport"
	"github.com/vitwit/paykit/types"
)

// Client implements transport.Storage against one homeserver.
type Client struct {
	base    string
	token   string
	httpCli *http.Client
}

// NewClient builds an unauthenticated client for discovery reads.
// httpClient may be nil, in which case http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:    strings.TrimSuffix(baseURL, "/"),
		httpCli: httpClient,
	}
}

// NewSessionClient builds a client that authenticates writes with the given
// session token.
func NewSessionClient(baseURL, token string, httpClient *http.Client) *Client {
	c := NewClient(baseURL, httpClient)
	c.token = token
	return c
}

func (c *Client) Get(ctx context.Context, addr string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if isGone(resp.StatusCode) {
		return nil, transport.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", addr, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get %s: read body: %w", addr, err)
	}
	return body, nil
}

// List requests a shallow listing of the directory at addr. The homeserver
// answers with one fully qualified child address per line.
func (c *Client) List(ctx context.Context, addr string) ([]types.Resource, error) {
	req, err := c.newRequest(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("shallow", "true")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if isGone(resp.StatusCode) {
		return nil, transport.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list %s: unexpected status %d", addr, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list %s: read body: %w", addr, err)
	}

	var entries []types.Resource
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, types.Resource{
			Path: transport.AddrPath(line),
			Addr: line,
		})
	}
	return entries, nil
}

func (c *Client) Put(ctx context.Context, addr string, body []byte) error {
	req, err := c.newRequest(ctx, http.MethodPut, addr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	resp, err := c.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("put %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("put %s: unexpected status %d", addr, resp.StatusCode)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, addr string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("delete %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if isGone(resp.StatusCode) {
		return transport.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("delete %s: unexpected status %d", addr, resp.StatusCode)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, addr string, body io.Reader) (*http.Request, error) {
	url, err := c.resolveURL(addr)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", strings.ToLower(method), addr, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// resolveURL maps a pubky:// address onto the homeserver's HTTP surface:
// pubky://{pk}/pub/... becomes {base}/{pk}/pub/...
func (c *Client) resolveURL(addr string) (string, error) {
	rest, ok := strings.CutPrefix(addr, transport.AddrScheme)
	if !ok || rest == "" {
		return "", fmt.Errorf("address %q does not use the %s scheme", addr, transport.AddrScheme)
	}
	return c.base + "/" + rest, nil
}

// isGone covers both ways a homeserver reports absence.
func isGone(status int) bool {
	return status == http.StatusNotFound || status == http.StatusGone
}
