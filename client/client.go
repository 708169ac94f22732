// SPDX-License-Identifier: GPL-3.0-only

// Package client talks to the waitlist API on behalf of the public site.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mineeast-server/commons"
	"mineeast-server/models"
)

type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

type SignupRequest struct {
	Email    string `json:"email"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

type signupResponse struct {
	TotalSignups *int64 `json:"total_signups"`
}

type signupsResponse struct {
	Signups []models.SignupRecord `json:"signups"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		commons.Logger.Error("Failed to parse waitlist API base URL:", err)
		return nil, err
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	commons.Logger.Debugf("Waitlist API client initialized for %s", baseURL)
	return &Client{
		BaseURL:    parsedURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}, nil
}

// SubmitSignup posts a waitlist signup. It never returns an error: every
// failure is reported as a Failed outcome.
func (c *Client) SubmitSignup(ctx context.Context, signup SignupRequest) Outcome {
	jsonBody, err := json.Marshal(signup)
	if err != nil {
		return Failed{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/signup"), bytes.NewReader(jsonBody))
	if err != nil {
		return Failed{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Failed{Err: fmt.Errorf("signup request failed: %w", err)}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return Failed{Status: resp.StatusCode, Err: readError(resp)}
	}

	var body signupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Failed{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode signup response: %w", err)}
	}
	if body.TotalSignups == nil {
		return Failed{Status: resp.StatusCode, Err: errors.New("signup response has no total_signups")}
	}
	return Success{Total: *body.TotalSignups}
}

func (c *Client) FetchStats(ctx context.Context) (models.StatsSnapshot, error) {
	var stats models.StatsSnapshot
	if err := c.getJSON(ctx, "/api/admin/stats", &stats); err != nil {
		return models.StatsSnapshot{}, err
	}
	return stats, nil
}

func (c *Client) FetchSignups(ctx context.Context) ([]models.SignupRecord, error) {
	var body signupsResponse
	if err := c.getJSON(ctx, "/api/admin/signups", &body); err != nil {
		return nil, err
	}
	return body.Signups, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return fmt.Errorf("GET %s: %s: %w", path, resp.Status, readError(resp))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// endpoint appends path to the base URL, keeping any prefix it carries.
func (c *Client) endpoint(path string) string {
	return c.BaseURL.JoinPath(path).String()
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

func readError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return errors.New(resp.Status)
	}
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return errors.New(resp.Status)
	}
	return errors.New(body.Error)
}
