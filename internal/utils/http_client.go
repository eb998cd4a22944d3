package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader is the header carrying the request identifier on every
// outbound call.
const TraceIDHeader = "X-Trace-ID"

const userAgent = "amnplus-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://example.com", 15*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/get/stats")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL with a per-request
// timeout. Every request carries the [TraceIDHeader] header: the identifier
// stored in the request context via [WithRequestID] when present, a fresh
// UUIDv7 otherwise.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			id, ok := GetRequestIDFromContext(r.Context())
			if !ok {
				id = ids.Generate()
			}
			r.SetHeader(TraceIDHeader, id)
			return nil
		})

	return &HTTPClient{Client: client}
}
