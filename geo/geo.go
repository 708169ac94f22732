// SPDX-License-Identifier: GPL-3.0-only

// Package geo looks up a visitor's country from their IP address.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"mineeast-server/commons"
	"mineeast-server/currency"
)

var ErrNonPublicIP = errors.New("ip address is not publicly routable")

type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

type lookupResponse struct {
	CountryCode string `json:"country_code"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse geolocation base url: %w", err)
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		BaseURL:    parsedURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}, nil
}

// Lookup returns the ISO 3166-1 alpha-2 country code for ip.
func (c *Client) Lookup(ctx context.Context, ip string) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil || !isPublic(addr) {
		return "", ErrNonPublicIP
	}

	endpoint := fmt.Sprintf("%s/%s/json/", strings.TrimRight(c.BaseURL.String(), "/"), url.PathEscape(addr.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("geolocation request failed: %s", resp.Status)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode geolocation response: %w", err)
	}
	if body.Error {
		return "", fmt.Errorf("geolocation lookup rejected: %s", body.Reason)
	}
	if body.CountryCode == "" {
		return "", errors.New("geolocation response has no country_code")
	}
	return body.CountryCode, nil
}

// ResolveCurrency never fails: any lookup problem yields USD.
func (c *Client) ResolveCurrency(ctx context.Context, ip string) currency.Currency {
	country, err := c.Lookup(ctx, ip)
	if err != nil {
		commons.Logger.Debugf("Currency lookup for %s fell back to USD: %v", ip, err)
		return currency.Default
	}
	return currency.Resolve(country)
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsValid() &&
		!addr.IsLoopback() &&
		!addr.IsPrivate() &&
		!addr.IsUnspecified() &&
		!addr.IsLinkLocalUnicast() &&
		!addr.IsMulticast()
}
