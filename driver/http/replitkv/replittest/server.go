// Package replittest provides an in-process fake of the Replit Database HTTP
// API, for testing code that uses [replitkv.Client] without network access.
package replittest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/randakar/repldbkit/driver/http/replitkv"
	"github.com/randakar/repldbkit/kv"
)

// BasePath is the path of the database's connection URL on a fake server.
const BasePath = "/v0/replittest"

// NewServer starts a TLS server that implements the Replit Database HTTP API,
// storing its data in store.
//
// It returns the database's connection URL and an HTTP client that trusts the
// server's certificate. The server is closed when the test ends.
func NewServer(t testing.TB, store kv.Store) (dbURL string, client *http.Client) {
	t.Helper()

	srv := httptest.NewTLSServer(NewHandler(store))
	t.Cleanup(srv.Close)

	return srv.URL + BasePath, srv.Client()
}

// NewClient starts a server as per [NewServer] and returns a
// [replitkv.Client] connected to it.
func NewClient(t testing.TB, store kv.Store, options ...replitkv.Option) *replitkv.Client {
	t.Helper()

	dbURL, httpClient := NewServer(t, store)

	u, err := url.Parse(dbURL)
	if err != nil {
		t.Fatal(err)
	}

	options = append(
		[]replitkv.Option{
			replitkv.WithHTTPClient(httpClient),
			replitkv.WithRequiredHost(u.Hostname()),
		},
		options...,
	)

	c, err := replitkv.New(dbURL, options...)
	if err != nil {
		t.Fatal(err)
	}

	return c
}

// NewHandler returns an [http.Handler] that serves the Replit Database HTTP
// API under [BasePath], storing its data in store.
//
// Keys and values are stored exactly as they appear on the wire, after
// form or path decoding, just as the real database does.
func NewHandler(store kv.Store) http.Handler {
	return &handler{store}
}

type handler struct {
	store kv.Store
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest, ok := strings.CutPrefix(r.URL.Path, BasePath)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if rest == "" || rest == "/" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.set(w, r)
		default:
			w.Header().Set("Allow", "GET, POST")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	k := strings.TrimPrefix(rest, "/")

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, k)
	case http.MethodDelete:
		h.delete(w, r, k)
	default:
		w.Header().Set("Allow", "GET, DELETE")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *handler) get(w http.ResponseWriter, r *http.Request, k string) {
	v, ok, err := h.store.Get(r.Context(), k)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, v)
}

func (h *handler) set(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := url.ParseQuery(string(data))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for k, values := range form {
		for _, v := range values {
			if err := h.store.Set(r.Context(), k, v); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
	}
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request, k string) {
	if err := h.store.Delete(r.Context(), k); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	keys, err := h.store.List(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, strings.Join(keys, "\n"))
}
