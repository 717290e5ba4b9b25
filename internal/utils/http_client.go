package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader is the request header carrying the per-request trace
// identifier.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithTraceID(utils.NewUUIDGenerator())
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/health/")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithTraceID registers a request middleware that sets the [TraceIDHeader]
// on every outgoing request. A trace ID stored in the request context via
// [WithTraceID] is reused; otherwise gen produces a new one. A header set
// explicitly on the request is left untouched.
func (c *HTTPClient) WithTraceID(gen *UUIDGenerator) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) != "" {
			return nil
		}

		traceID, ok := GetTraceIDFromContext(r.Context())
		if !ok {
			traceID = gen.Generate()
		}
		r.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	return c
}
