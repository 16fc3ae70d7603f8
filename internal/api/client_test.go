package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/byetz/internal/shared"
	tu "github.com/desertthunder/byetz/internal/testing"
)

func newTestClient(url string, tokens TokenSource) *Client {
	return New(url, nil, tokens, shared.NewLogger(io.Discard))
}

func TestClient(t *testing.T) {
	t.Run("decodes a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"plex_username":"thorn","total_likes":7}`))
		}))
		defer server.Close()

		profile, err := newTestClient(server.URL, nil).Profile(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if profile.PlexUsername != "thorn" || profile.TotalLikes != 7 {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})

	t.Run("401 maps to ErrUnauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, nil).Profile(context.Background())
		if !errors.Is(err, shared.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("5xx maps to ErrServer with the status attached", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, nil).Profile(context.Background())
		if !errors.Is(err, shared.ErrServer) {
			t.Fatalf("expected ErrServer, got %v", err)
		}
		code, ok := StatusCode(err)
		if !ok || code != http.StatusBadGateway {
			t.Errorf("expected status 502, got %d (%t)", code, ok)
		}
	})

	t.Run("4xx other than 401 also maps to ErrServer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, nil).Profile(context.Background())
		if !errors.Is(err, shared.ErrServer) {
			t.Fatalf("expected ErrServer, got %v", err)
		}
		if code, _ := StatusCode(err); code != http.StatusUnprocessableEntity {
			t.Errorf("expected status 422, got %d", code)
		}
	})

	t.Run("malformed body maps to ErrDecoding", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"plex_username":`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, nil).Profile(context.Background())
		if !errors.Is(err, shared.ErrDecoding) {
			t.Errorf("expected ErrDecoding, got %v", err)
		}
	})

	t.Run("transport failure maps to ErrNetwork", func(t *testing.T) {
		httpClient := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}
		client := New("http://127.0.0.1:1", httpClient, nil, shared.NewLogger(io.Discard))

		_, err := client.Profile(context.Background())
		if !errors.Is(err, shared.ErrNetwork) {
			t.Errorf("expected ErrNetwork, got %v", err)
		}
	})

	t.Run("unparseable URL maps to ErrInvalidRequest", func(t *testing.T) {
		client := newTestClient("://broken", nil)

		_, err := client.Profile(context.Background())
		if !errors.Is(err, shared.ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("attaches the bearer token when present", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		store := tu.NewMemStore()
		if err := store.SaveAccessToken("abc123"); err != nil {
			t.Fatal(err)
		}

		if _, err := newTestClient(server.URL, store).Profile(context.Background()); err != nil {
			t.Fatal(err)
		}
		if gotAuth != "Bearer abc123" {
			t.Errorf("expected bearer header, got %q", gotAuth)
		}
	})

	t.Run("omits the header without a token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL, tu.NewMemStore()).Profile(context.Background()); err != nil {
			t.Fatal(err)
		}
		if gotAuth != "" {
			t.Errorf("expected no auth header, got %q", gotAuth)
		}
	})

	t.Run("defaults the base URL", func(t *testing.T) {
		client := New("", nil, nil, nil)

		if client.BaseURL() != defaultBaseURL {
			t.Errorf("expected %s, got %s", defaultBaseURL, client.BaseURL())
		}
	})
}
