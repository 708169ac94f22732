// SPDX-License-Identifier: GPL-3.0-only

package site

import (
	"fmt"
	"net"
	"strings"

	"github.com/labstack/echo/v4"
)

// IPExtractor honours X-Forwarded-For only when the request arrives from a
// loopback, link-local or private address, or from one of trustedProxies.
func IPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	opts := make([]echo.TrustOption, 0, len(trustedProxies))
	for _, cidr := range trustedProxies {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("parse trusted proxy %q: %w", cidr, err)
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...), nil
}
