// Package client provides a typed HTTP client for the feature-voting API,
// one method per endpoint, plus the vote-toggle helper UI consumers use to
// decide between casting and removing a vote.
//
// The toggle asymmetry is deliberate and must stay on this side of the wire:
// pressing the vote type a user already holds maps to RemoveVote, while the
// server's POST /votes only ever casts or overwrites — it never auto-removes.
// Press(current, pressed) encodes exactly that decision.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tbourn/go-votes-backend/internal/domain"
)

// VoteAction is the client-side decision for a vote button press.
type VoteAction int

const (
	// ActionCast submits POST /votes with the pressed type.
	ActionCast VoteAction = iota
	// ActionRemove submits DELETE /votes.
	ActionRemove
)

// Press maps a vote button press to the API call the client should make.
// current is the user's recorded vote ("" when none), pressed is the button
// type. Pressing the already-active type removes the vote; anything else
// casts (which the server treats as create-or-overwrite).
func Press(current, pressed string) VoteAction {
	if current == pressed {
		return ActionRemove
	}
	return ActionCast
}

// APIError is returned for any non-2xx response, carrying the server's
// error envelope so callers can surface the message verbatim.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Details    string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api: %d %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Vote is the wire shape of a vote mutation result.
type Vote struct {
	ID        int64  `json:"id"`
	FeatureID int64  `json:"featureId"`
	UserID    int64  `json:"userId"`
	VoteType  string `json:"voteType"`
}

// Message is the `{message}` body returned by delete endpoints.
type Message struct {
	Message string `json:"message"`
}

// Client calls the feature-voting API. The zero value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (e.g. for timeouts or
// test transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a Client rooted at baseURL (e.g. "http://localhost:3000/api/v1").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ResolveUser looks up or creates the user for username.
func (c *Client) ResolveUser(ctx context.Context, username string) (*domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodPost, "/users", nil, map[string]any{"username": username}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFeatures returns the ranked feature list. userID may be 0 to skip
// user_vote augmentation.
func (c *Client) ListFeatures(ctx context.Context, userID int64) ([]domain.FeatureWithVotes, error) {
	var out []domain.FeatureWithVotes
	err := c.do(ctx, http.MethodGet, "/features", optionalUserQuery(userID), nil, &out)
	return out, err
}

// GetFeature returns one augmented feature.
func (c *Client) GetFeature(ctx context.Context, id, userID int64) (*domain.FeatureWithVotes, error) {
	var out domain.FeatureWithVotes
	err := c.do(ctx, http.MethodGet, "/features/"+strconv.FormatInt(id, 10), optionalUserQuery(userID), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFeature submits a new feature authored by userID.
func (c *Client) CreateFeature(ctx context.Context, title, description string, userID int64) (*domain.FeatureWithVotes, error) {
	var out domain.FeatureWithVotes
	err := c.do(ctx, http.MethodPost, "/features", nil, map[string]any{
		"title":       title,
		"description": description,
		"userId":      userID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFeature overwrites title/description as userID (must be the author).
func (c *Client) UpdateFeature(ctx context.Context, id int64, title, description string, userID int64) (*domain.FeatureWithVotes, error) {
	var out domain.FeatureWithVotes
	err := c.do(ctx, http.MethodPut, "/features/"+strconv.FormatInt(id, 10), nil, map[string]any{
		"title":       title,
		"description": description,
		"userId":      userID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFeature removes the feature as userID (must be the author).
func (c *Client) DeleteFeature(ctx context.Context, id, userID int64) (*Message, error) {
	q := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	var out Message
	err := c.do(ctx, http.MethodDelete, "/features/"+strconv.FormatInt(id, 10), q, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CastVote casts or overwrites the user's vote on a feature.
func (c *Client) CastVote(ctx context.Context, featureID, userID int64, voteType string) (*Vote, error) {
	var out Vote
	err := c.do(ctx, http.MethodPost, "/votes", nil, map[string]any{
		"featureId": featureID,
		"userId":    userID,
		"voteType":  voteType,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveVote deletes the user's vote on a feature.
func (c *Client) RemoveVote(ctx context.Context, featureID, userID int64) (*Message, error) {
	q := url.Values{
		"featureId": {strconv.FormatInt(featureID, 10)},
		"userId":    {strconv.FormatInt(userID, 10)},
	}
	var out Message
	err := c.do(ctx, http.MethodDelete, "/votes", q, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request/response cycle: encode body, send, decode either
// the success payload into out or the error envelope into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func optionalUserQuery(userID int64) url.Values {
	if userID <= 0 {
		return nil
	}
	return url.Values{"userId": {strconv.FormatInt(userID, 10)}}
}
