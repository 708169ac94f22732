// SPDX-License-Identifier: GPL-3.0-only

// Package site renders the public landing page and the admin page on top of
// the waitlist API.
package site

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"mineeast-server/client"
	"mineeast-server/commons"
	"mineeast-server/currency"
	"mineeast-server/models"

	"github.com/labstack/echo/v4"
)

// API is the subset of the waitlist API client the site depends on.
type API interface {
	AdminSource
	SubmitSignup(ctx context.Context, signup client.SignupRequest) client.Outcome
}

// CurrencyResolver picks a display currency for a visitor IP.
type CurrencyResolver interface {
	ResolveCurrency(ctx context.Context, ip string) currency.Currency
}

// maxFormCount bounds the count posted back by the waitlist form.
const maxFormCount = 1_000_000_000

type Site struct {
	api          API
	geo          CurrencyResolver
	brand        string
	initialCount int64
	launchAt     time.Time
	now          func() time.Time
}

func New(cfg commons.SiteConfig, api API, geo CurrencyResolver) *Site {
	now := time.Now
	return &Site{
		api:          api,
		geo:          geo,
		brand:        cfg.BrandName,
		initialCount: cfg.InitialSignupCount,
		launchAt:     LaunchInstant(cfg.LaunchAt, now()),
		now:          now,
	}
}

func (s *Site) Register(e *echo.Echo) {
	e.GET("/", s.Index)
	e.POST("/waitlist", s.Submit)
	e.GET("/admin", s.Admin)
	e.GET("/static/*", ServeStaticFile)
}

type PlanCard struct {
	Name     string
	Price    string
	Period   string
	Popular  bool
	Features []string
}

type landingPage struct {
	Brand     string
	Currency  currency.Currency
	Plans     []PlanCard
	Countdown Countdown
	LaunchAt  time.Time
	Waitlist  WaitlistState
	Year      int
}

type adminPage struct {
	Brand string
	AdminView
}

func (s *Site) Index(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		cur   currency.Currency
		count int64
		wg    sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cur = s.geo.ResolveCurrency(ctx, c.RealIP())
	}()
	go func() {
		defer wg.Done()
		count = s.currentCount(ctx, c.Logger())
	}()
	wg.Wait()

	return s.renderLanding(c, cur, WaitlistState{Count: count})
}

// Submit handles the waitlist form. The visitor always sees the thank-you
// state once an email was entered; the real outcome is only logged.
func (s *Site) Submit(c echo.Context) error {
	cur := currency.ByCode(c.FormValue("currency"))
	prev, err := strconv.ParseInt(c.FormValue("count"), 10, 64)
	if err != nil || prev < 0 || prev > maxFormCount {
		prev = s.initialCount
	}

	email := strings.TrimSpace(c.FormValue("email"))
	if email == "" {
		return s.renderLanding(c, cur, WaitlistState{Count: prev})
	}

	outcome := s.api.SubmitSignup(c.Request().Context(), client.SignupRequest{
		Email:    email,
		Country:  currency.CountryFor(cur),
		Currency: cur.Code,
	})
	switch o := outcome.(type) {
	case client.Success:
		c.Logger().Infof("Waitlist signup accepted, total %d", o.Total)
	case client.Failed:
		c.Logger().Warn("Waitlist signup failed: ", o.Error())
	}

	return s.renderLanding(c, cur, Display(prev, outcome))
}

func (s *Site) Admin(c echo.Context) error {
	view := LoadAdminView(c.Request().Context(), s.api, c.Logger())
	return c.Render(http.StatusOK, "admin.html", adminPage{Brand: s.brand, AdminView: view})
}

func (s *Site) currentCount(ctx context.Context, logger echo.Logger) int64 {
	stats, err := s.api.FetchStats(ctx)
	if err != nil {
		logger.Debug("Using initial signup count: ", err)
		return s.initialCount
	}
	return stats.TotalSignups
}

func (s *Site) renderLanding(c echo.Context, cur currency.Currency, state WaitlistState) error {
	now := s.now()
	return c.Render(http.StatusOK, "index.html", landingPage{
		Brand:     s.brand,
		Currency:  cur,
		Plans:     planCards(cur),
		Countdown: Remaining(now, s.launchAt),
		LaunchAt:  s.launchAt,
		Waitlist:  state,
		Year:      now.Year(),
	})
}

func planCards(cur currency.Currency) []PlanCard {
	period := currency.PeriodLabel(cur)
	cards := make([]PlanCard, 0, len(models.HostingPlans))
	for _, plan := range models.HostingPlans {
		cards = append(cards, PlanCard{
			Name:     string(plan.Name),
			Price:    currency.Convert(plan.Price, cur.Code).String(),
			Period:   period,
			Popular:  plan.Popular,
			Features: plan.Features,
		})
	}
	return cards
}
