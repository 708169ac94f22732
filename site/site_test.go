// SPDX-License-Identifier: GPL-3.0-only

package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"mineeast-server/client"
	"mineeast-server/commons"
	"mineeast-server/currency"
	"mineeast-server/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu         sync.Mutex
	submitted  []client.SignupRequest
	outcome    client.Outcome
	stats      models.StatsSnapshot
	statsErr   error
	signups    []models.SignupRecord
	signupsErr error
}

func (f *fakeAPI) SubmitSignup(ctx context.Context, signup client.SignupRequest) client.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, signup)
	return f.outcome
}

func (f *fakeAPI) FetchStats(ctx context.Context) (models.StatsSnapshot, error) {
	return f.stats, f.statsErr
}

func (f *fakeAPI) FetchSignups(ctx context.Context) ([]models.SignupRecord, error) {
	return f.signups, f.signupsErr
}

type fakeGeo struct {
	currency currency.Currency
}

func (f fakeGeo) ResolveCurrency(ctx context.Context, ip string) currency.Currency {
	return f.currency
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestSite(t *testing.T, api *fakeAPI, cur currency.Currency) *echo.Echo {
	t.Helper()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	s := New(commons.SiteConfig{BrandName: "MineEast", InitialSignupCount: 127}, api, fakeGeo{currency: cur})
	s.now = func() time.Time { return testNow }
	s.launchAt = testNow.Add(DefaultLaunchWindow)

	e := echo.New()
	e.Renderer = renderer
	s.Register(e)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/waitlist", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestIndexRendersLocalizedLanding(t *testing.T) {
	api := &fakeAPI{stats: models.StatsSnapshot{TotalSignups: 311}}
	e := newTestSite(t, api, currency.Resolve("AE"))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Now Live: 311+ Early Adopters")
	assert.Contains(t, body, `data-launch="2025-07-01T12:00:00Z"`)
	assert.Contains(t, body, `<span data-unit="days">30</span>`)
	assert.Contains(t, body, `name="currency" value="AED"`)
	assert.Contains(t, body, `name="count" value="311"`)
	assert.Contains(t, body, "د.إ18<span>/شهر</span>")
	assert.Contains(t, body, "د.إ44<span>/شهر</span>")
	assert.Contains(t, body, "Coming Soon")
	assert.NotContains(t, body, "Thank You!")
}

func TestIndexFallsBackToInitialCount(t *testing.T) {
	api := &fakeAPI{statsErr: errors.New("connection refused")}
	e := newTestSite(t, api, currency.Default)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Now Live: 127+ Early Adopters")
	assert.Contains(t, body, "$5<span>/mo</span>")
	assert.Contains(t, body, "$45<span>/mo</span>")
}

func TestSubmitShowsServerTotal(t *testing.T) {
	api := &fakeAPI{outcome: client.Success{Total: 312}}
	e := newTestSite(t, api, currency.Default)

	rec := serve(e, postForm(url.Values{"email": {"  steve@example.com "}, "currency": {"QAR"}, "count": {"311"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You're #312 on the waitlist!")
	assert.NotContains(t, rec.Body.String(), `name="email"`)
	require.Len(t, api.submitted, 1)
	assert.Equal(t, client.SignupRequest{Email: "steve@example.com", Country: "QA", Currency: "QAR"}, api.submitted[0])
}

func TestSubmitMasksFailure(t *testing.T) {
	api := &fakeAPI{outcome: client.Failed{Status: http.StatusInternalServerError, Err: errors.New("Internal server error")}}
	e := newTestSite(t, api, currency.Default)

	rec := serve(e, postForm(url.Values{"email": {"steve@example.com"}, "currency": {"XYZ"}, "count": {"200"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thank You!")
	assert.Contains(t, rec.Body.String(), "You're #201 on the waitlist!")
	require.Len(t, api.submitted, 1)
	assert.Equal(t, "US", api.submitted[0].Country)
	assert.Equal(t, "USD", api.submitted[0].Currency)
}

func TestSubmitBadCountUsesInitialCount(t *testing.T) {
	api := &fakeAPI{outcome: client.Failed{Err: errors.New("timeout")}}
	e := newTestSite(t, api, currency.Default)

	rec := serve(e, postForm(url.Values{"email": {"steve@example.com"}, "count": {"lots"}}))

	assert.Contains(t, rec.Body.String(), "You're #128 on the waitlist!")
}

func TestSubmitEmptyEmailDoesNotSubmit(t *testing.T) {
	api := &fakeAPI{outcome: client.Success{Total: 1}}
	e := newTestSite(t, api, currency.Default)

	rec := serve(e, postForm(url.Values{"email": {"   "}, "currency": {"SAR"}, "count": {"50"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, api.submitted)
	assert.Contains(t, rec.Body.String(), `name="email"`)
	assert.Contains(t, rec.Body.String(), `name="currency" value="SAR"`)
	assert.NotContains(t, rec.Body.String(), "Thank You!")
}

func TestAdminRendersSignupsAndDistribution(t *testing.T) {
	ae := "AE"
	aed := "AED"
	api := &fakeAPI{
		stats: models.StatsSnapshot{
			TotalSignups:   3,
			TodaySignups:   1,
			WeekSignups:    2,
			MenaPercentage: 66.7,
			CountryDistribution: []models.CountryCount{
				{Country: "AE", Count: 1},
				{Country: "SA", Count: 2},
			},
		},
		signups: []models.SignupRecord{
			{ID: 3, Email: "c@example.com", Country: &ae, Currency: &aed, CreatedAt: time.Date(2025, 3, 5, 14, 7, 0, 0, time.UTC)},
			{ID: 2, Email: "b@example.com", CreatedAt: time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)},
		},
	}
	e := newTestSite(t, api, currency.Default)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "+1")
	assert.Contains(t, body, "+2")
	assert.Contains(t, body, "66.7%")
	assert.Contains(t, body, "Mar 5, 2025, 02:07 PM")
	assert.Contains(t, body, "<td>N/A</td>")
	assert.Contains(t, body, "<td>USD</td>")
	assert.NotContains(t, body, "No signups yet")

	aeIdx := strings.Index(body, "<small>AE</small>")
	saIdx := strings.Index(body, "<small>SA</small>")
	require.NotEqual(t, -1, aeIdx)
	require.NotEqual(t, -1, saIdx)
	assert.Less(t, aeIdx, saIdx, "distribution is rendered in received order")
}

func TestAdminEmptyAndFailing(t *testing.T) {
	api := &fakeAPI{statsErr: errors.New("down"), signupsErr: errors.New("down")}
	e := newTestSite(t, api, currency.Default)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "No signups yet. Share your website to get started!")
	assert.Contains(t, body, "0.0%")
	assert.NotContains(t, body, "Country Distribution")
}

func TestServeStaticFile(t *testing.T) {
	e := newTestSite(t, &fakeAPI{}, currency.Default)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/static/index.html", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServeStaticFileRejectsTraversal(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("*")
	c.SetParamValues("../render.go")

	err := ServeStaticFile(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSubmitRejectsOversizedCount(t *testing.T) {
	api := &fakeAPI{outcome: client.Failed{Err: errors.New("timeout")}}
	e := newTestSite(t, api, currency.Default)

	for _, count := range []string{"9223372036854775807", "1000000001"} {
		rec := serve(e, postForm(url.Values{"email": {"steve@example.com"}, "count": {count}}))

		assert.Contains(t, rec.Body.String(), "You're #128 on the waitlist!", count)
	}
}
