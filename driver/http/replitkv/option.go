package replitkv

import "net/http"

// DefaultHost is the host that connection URLs must have unless overridden by
// [WithRequiredHost].
const DefaultHost = "kv.replit.com"

// Option is a functional option that changes the behavior of [New].
type Option func(*Client)

// WithHTTPClient is an [Option] that sets the HTTP client used to send
// requests.
//
// Timeouts, proxies and TLS settings are all taken from h. By default a
// client with no timeout is used, so requests are bounded only by the context
// passed to each operation.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithRequiredHost is an [Option] that changes the host that the connection
// URL must have.
func WithRequiredHost(host string) Option {
	return func(c *Client) {
		c.requiredHost = host
	}
}

// WithRequestHook is an [Option] that configures fn as a pre-request hook.
//
// fn is called with each request before it is sent, and may modify it
// in-place, for example to add headers.
func WithRequestHook(fn func(*http.Request)) Option {
	return func(c *Client) {
		c.onRequest = fn
	}
}
