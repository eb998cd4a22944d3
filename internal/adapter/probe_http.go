package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/amnplus-client/internal/utils"
	"github.com/go-resty/resty/v2"
)

type httpKeyProber struct {
	client *utils.HTTPClient
}

// NewHTTPKeyProber returns a [KeyProber] that issues plain GET requests.
// Redirects are not followed: a redirect to a login page is not a sign of an
// accepted key.
func NewHTTPKeyProber(timeout time.Duration) KeyProber {
	client := utils.NewHTTPClient("", timeout)
	client.SetRedirectPolicy(resty.NoRedirectPolicy())

	return &httpKeyProber{client: client}
}

// Probe implements [KeyProber].
func (p *httpKeyProber) Probe(ctx context.Context, target, key string) (int, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(key).
		Get(target)
	// A refused redirect still carries the redirect response.
	if resp == nil || resp.StatusCode() == 0 {
		return 0, fmt.Errorf("probe %s: %w", target, err)
	}

	return resp.StatusCode(), nil
}
