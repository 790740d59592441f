package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trotter/session"

	"github.com/pkg/errors"
)

// Client is the one place that talks to the GlobeTrotter backend. It builds
// URLs from a fixed base, attaches the signed-in user's id as the X-User-Id
// header, and normalizes failures into APIError. No retries: the backend is
// assumed reliable for this app's scope.

// ErrNotFound marks a backend 404 so callers can render a not-found page
// instead of a generic banner. Check with errors.Is.
var ErrNotFound = errors.New("not found")

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// params turns a string map into query values, keeping only non-empty keys.
func params(m map[string]string) url.Values {
	q := url.Values{}
	for k, v := range m {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Absence of the header is how the backend recognizes an anonymous call.
	if id, ok := session.FromContext(ctx); ok {
		req.Header.Set("X-User-Id", id.UserID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "call backend")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readDetail(resp.Body)}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

// readDetail pulls the backend's human-readable message out of an error
// body, falling back to a generic string when there is none.
func readDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return "Request failed"
}
