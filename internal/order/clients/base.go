// Package clients holds the HTTP implementations of the collaborator
// contracts the order composer consumes. Paths mirror the routes exposed by
// the client and product services.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/TracySk8/TP2/internal/order"
)

type base struct {
	service string
	baseURL *url.URL
	http    *http.Client
}

func newBase(service, rawURL string, httpClient *http.Client) base {
	u, err := url.Parse(rawURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid %s base url %q: %v", service, rawURL, err))
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return base{service: service, baseURL: u, http: httpClient}
}

// do issues the request and wraps transport failures as UpstreamError. Status
// handling is left to each caller; the collaborators disagree on what a
// non-2xx means.
func (b base) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", b.service, err)
		}
		reader = bytes.NewReader(buf)
	}

	u := b.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, &order.UpstreamError{Service: b.service, Err: err}
	}
	return resp, nil
}

func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}

func success(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
