package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/byetz/internal/shared"
)

const defaultBaseURL = "http://127.0.0.1:8101"

// TokenSource supplies the current bearer token, if any.
//
// Implemented by the credential store so a login in the same process is
// picked up by the next request without rebuilding the client.
type TokenSource interface {
	AccessToken() (string, bool)
}

// Client makes authenticated JSON requests to the BYETZ backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *log.Logger
}

// statusError carries the HTTP status for the server error class.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error: status %d", e.code)
}

func (e *statusError) Is(target error) bool {
	return target == shared.ErrServer
}

// StatusCode extracts the HTTP status from a [shared.ErrServer] error.
func StatusCode(err error) (int, bool) {
	var se *statusError
	if errors.As(err, &se) {
		return se.code, true
	}
	return 0, false
}

// New creates a Client for the given base URL.
//
// A nil http.Client falls back to [http.DefaultClient]; a nil TokenSource
// means every request goes out unauthenticated.
func New(baseURL string, httpClient *http.Client, tokens TokenSource, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one authenticated round trip and decodes the response into result.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	fullURL := c.baseURL + path
	if _, err := url.ParseRequestURI(fullURL); err != nil {
		return fmt.Errorf("%w: %s", shared.ErrInvalidRequest, fullURL)
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrInvalidRequest, err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidRequest, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token, ok := c.tokens.AccessToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if result == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrDecoding, err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return shared.ErrUnauthorized
	default:
		return &statusError{code: resp.StatusCode}
	}
}

// request performs a round trip and decodes the response body as T.
func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	err := c.do(ctx, method, path, body, &out)
	return out, err
}
