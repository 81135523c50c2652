package replitkv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/randakar/repldbkit/internal/errorx"
	"github.com/randakar/repldbkit/kv"
)

// Client is an implementation of [kv.Store] that reads and writes key/value
// pairs in a Replit Database.
//
// It holds no mutable state, and is safe for concurrent use. It does not
// retry failed requests.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	requiredHost string
	onRequest    func(*http.Request)
}

var _ kv.Store = (*Client)(nil)

// New returns a new [Client] connected to the database at the given URL.
//
// It returns a [kv.ConfigurationError] if the URL is empty, cannot be parsed,
// does not use the "https" scheme or does not have the required host.
func New(dbURL string, options ...Option) (*Client, error) {
	c := &Client{
		httpClient:   &http.Client{},
		requiredHost: DefaultHost,
	}

	for _, opt := range options {
		opt(c)
	}

	if err := c.validate(dbURL); err != nil {
		return nil, err
	}

	c.baseURL = strings.TrimSuffix(dbURL, "/")

	return c, nil
}

func (c *Client) validate(dbURL string) error {
	fail := func(cause error, format string, args ...any) error {
		return &kv.ConfigurationError{
			URL:    dbURL,
			Reason: fmt.Sprintf(format, args...),
			Cause:  cause,
		}
	}

	if strings.TrimSpace(dbURL) == "" {
		return fail(nil, "no URL provided")
	}

	u, err := url.Parse(dbURL)
	if err != nil {
		return fail(err, "unable to parse URL")
	}

	if u.Scheme != "https" {
		return fail(nil, "scheme must be %q, got %q", "https", u.Scheme)
	}

	if u.Hostname() != c.requiredHost {
		return fail(nil, "host must be %q, got %q", c.requiredHost, u.Hostname())
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return fail(nil, "URL must not have a query or fragment")
	}

	return nil
}

// Get returns the value associated with k.
//
// If the key does not exist ok is false and v is empty.
func (c *Client) Get(ctx context.Context, k string) (v string, ok bool, err error) {
	defer errorx.Backend(&err, "get", k)

	res, body, err := c.do(ctx, http.MethodGet, c.keyURL(k), nil)
	if err != nil {
		return "", false, err
	}

	if res.StatusCode == http.StatusNotFound {
		return "", false, nil
	}

	if err := checkStatus(res, body); err != nil {
		return "", false, err
	}

	v, err = Decode(string(body))
	if err != nil {
		return "", false, err
	}

	return v, true, nil
}

// Set associates v with k, replacing any existing value.
//
// The response from the database is not inspected; only a failure to send the
// request is reported as an error.
func (c *Client) Set(ctx context.Context, k, v string) (err error) {
	defer errorx.Backend(&err, "set", k)

	form := url.QueryEscape(Encode(k)) + "=" + url.QueryEscape(Encode(v))

	_, _, err = c.do(ctx, http.MethodPost, c.baseURL, strings.NewReader(form))
	return err
}

// Delete removes k from the database.
//
// Deleting a key that does not exist is not an error.
func (c *Client) Delete(ctx context.Context, k string) (err error) {
	defer errorx.Backend(&err, "delete", k)

	_, _, err = c.do(ctx, http.MethodDelete, c.keyURL(k), nil)
	return err
}

// List returns the keys that start with prefix, in the order the database
// returns them.
func (c *Client) List(ctx context.Context, prefix string) (keys []string, err error) {
	defer errorx.Backend(&err, "list", prefix)

	target := c.baseURL + "?prefix=" + url.QueryEscape(Encode(prefix))

	res, body, err := c.do(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(res, body); err != nil {
		return nil, err
	}

	return parseKeys(string(body))
}

// GetMany returns the values associated with each of the given keys, in the
// same order. See [kv.GetMany].
func (c *Client) GetMany(ctx context.Context, keys ...string) ([]string, error) {
	return kv.GetMany(ctx, c, keys...)
}

// SetAll associates each value in m with its key. See [kv.SetAll].
func (c *Client) SetAll(ctx context.Context, m map[string]string) error {
	return kv.SetAll(ctx, c, m)
}

// DeleteAll removes each of the given keys. See [kv.DeleteAll].
func (c *Client) DeleteAll(ctx context.Context, keys []string) error {
	return kv.DeleteAll(ctx, c, keys)
}

// Empty removes every key in the database. See [kv.Empty].
func (c *Client) Empty(ctx context.Context) error {
	return kv.Empty(ctx, c)
}

// keyURL returns the URL of the resource that represents k.
func (c *Client) keyURL(k string) string {
	return c.baseURL + "/" + url.PathEscape(Encode(k))
}

// do sends a request and reads the entire response body.
func (c *Client) do(
	ctx context.Context,
	method, target string,
	body io.Reader,
) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if c.onRequest != nil {
		c.onRequest(req)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read response body: %w", err)
	}

	return res, data, nil
}

// parseKeys parses the newline-separated list of encoded keys returned by the
// database.
//
// Lines are split before they are decoded, so that keys containing encoded
// newlines are preserved.
func parseKeys(body string) ([]string, error) {
	if isBlank(body) {
		return nil, nil
	}

	lines := strings.Split(body, "\n")
	keys := make([]string, len(lines))

	for i, line := range lines {
		k, err := Decode(line)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	return keys, nil
}
