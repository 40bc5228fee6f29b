// Package api is the client-side view of the directory HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fabienvalero1/userdir/internal/common"
)

// ErrUnavailable marks transport-level failures (server down, DNS, refused
// connection). Callers show a notice and keep whatever data they already have.
var ErrUnavailable = errors.New("server unavailable")

// User mirrors one directory record as served by the API.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Page is one fetched window of the directory plus the unfiltered total.
type Page struct {
	Users []User `json:"data"`
	Total int64  `json:"total"`
}

// Client fetches directory records.
type Client interface {
	ListUsers(ctx context.Context, limit, offset int) (*Page, error)
	GetUser(ctx context.Context, id int64) (*User, error)
}

type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client against the given base URL. No request
// timeout is set: a hung request stays in flight, matching the documented
// loading behavior.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{baseURL: baseURL, hc: &http.Client{}}
}

func (c *HTTPClient) ListUsers(ctx context.Context, limit, offset int) (*Page, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var page Page
	if err := c.getJSON(ctx, "/api/users?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*User, error) {
	var resp struct {
		Data *User `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/users/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode error: %w", err)
		}
		return nil
	case res.StatusCode == http.StatusNotFound:
		return common.ErrorNotFound
	default:
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&body)
		if body.Error == "" {
			body.Error = res.Status
		}
		return fmt.Errorf("%w: %s", common.ErrorInternal, body.Error)
	}
}
