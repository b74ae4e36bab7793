// Package client is the Go consumer of the TravelHub API: a thin HTTP
// client plus per-entity sync stores that mirror server state with
// optimistic updates.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travelhub/models"
)

// requestTimeout bounds every API call; a timed-out call is treated
// as failed on the client even though the server write may land.
const requestTimeout = 10 * time.Second

// TripAPI is the server surface the trip sync store needs.
type TripAPI interface {
	CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error)
	UpdateTrip(ctx context.Context, trip models.Trip) (models.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

// PostAPI is the server surface the post sync store needs.
type PostAPI interface {
	ToggleLike(ctx context.Context, postID string) (LikeState, error)
}

// LikeState mirrors the server's toggle-like response.
type LikeState struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

type APIClient struct {
	base  string
	token string
	httpc *http.Client
}

func NewAPIClient(base, token string) *APIClient {
	return &APIClient{
		base:  base,
		token: token,
		httpc: &http.Client{Timeout: requestTimeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, env.Message)
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *APIClient) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	var created models.Trip
	err := c.do(ctx, http.MethodPost, "/api/trips", trip, &created)
	return created, err
}

func (c *APIClient) UpdateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	var updated models.Trip
	err := c.do(ctx, http.MethodPut, "/api/trips/"+trip.TripID, trip, &updated)
	return updated, err
}

func (c *APIClient) DeleteTrip(ctx context.Context, tripID string) error {
	return c.do(ctx, http.MethodDelete, "/api/trips/"+tripID, nil, nil)
}

func (c *APIClient) ToggleLike(ctx context.Context, postID string) (LikeState, error) {
	var state LikeState
	err := c.do(ctx, http.MethodPost, "/api/posts/"+postID+"/like", nil, &state)
	return state, err
}
