package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"station_lookup_backend/platform/apperr"
)

// maxAssetBytes bounds a single asset download.
const maxAssetBytes = 32 << 20

// HTTPStore fetches assets with GET {baseURL}/{name}. There are no retries.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore creates a store for assets served by a static web server.
func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Read downloads the named asset.
func (s *HTTPStore) Read(ctx context.Context, name string) (string, error) {
	const op = "assets.HTTPStore.Read"
	if err := checkName(op, name); err != nil {
		return "", err
	}

	reqURL := s.baseURL + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUnavailable, "asset store unavailable", err).WithOp(op)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", notFound(op, name)
	case resp.StatusCode != http.StatusOK:
		return "", apperr.Wrap(apperr.KindUnavailable, "asset store unavailable",
			fmt.Errorf("upstream status %d for %s", resp.StatusCode, name)).WithOp(op)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return "", apperr.Wrap(apperr.KindUnavailable, "failed to read asset body", err).WithOp(op)
	}
	return string(data), nil
}
