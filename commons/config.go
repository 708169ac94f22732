// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// APIConfig holds the waitlist API listener settings. Storage, broker and mail
// settings are read where they are used through GetEnv.
type APIConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// SiteConfig holds the settings of the public site binary.
type SiteConfig struct {
	Port               string        `env:"SITE_PORT" envDefault:"8081"`
	APIURL             string        `env:"API_URL" envDefault:"http://localhost:8080"`
	APITimeout         time.Duration `env:"API_TIMEOUT" envDefault:"5s"`
	GeoIPURL           string        `env:"GEOIP_URL" envDefault:"https://ipapi.co"`
	GeoIPTimeout       time.Duration `env:"GEOIP_TIMEOUT" envDefault:"3s"`
	LaunchAt           time.Time     `env:"LAUNCH_AT"`
	InitialSignupCount int64         `env:"INITIAL_SIGNUP_COUNT" envDefault:"127"`
	BrandName          string        `env:"BRAND_NAME" envDefault:"MineEast"`
	// CIDRs allowed to set X-Forwarded-For, on top of loopback and private ranges.
	TrustedProxies     []string      `env:"TRUSTED_PROXIES" envSeparator:","`
}

func LoadAPIConfig() (APIConfig, error) {
	LoadEnvFile()
	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse api config: %w", err)
	}
	return cfg, nil
}

func LoadSiteConfig() (SiteConfig, error) {
	LoadEnvFile()
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse site config: %w", err)
	}
	return cfg, nil
}

// ListenAddr turns "8080" or ":8080" into a listen address.
func ListenAddr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] != ':' {
		return ":" + port
	}
	return port
}
