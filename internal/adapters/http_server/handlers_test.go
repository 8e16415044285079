package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "travel_planner/internal/adapters/http_server"
	"travel_planner/internal/catalog"
	"travel_planner/internal/domain"
)

type fakePlanner struct {
	plan domain.Plan
	err  error
	got  domain.PlanRequest
}

func (f *fakePlanner) Plan(ctx context.Context, req domain.PlanRequest) (domain.Plan, error) {
	f.got = req
	return f.plan, f.err
}

type fakeRenderer struct {
	err error
	got []string
}

func (f *fakeRenderer) Render(reports []string) ([]byte, error) {
	f.got = reports
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func newServer(p *fakePlanner, r *fakeRenderer) http.Handler {
	srv := httpserver.New(5 * time.Second)
	srv.MountHandlers(&httpserver.Handlers{Planner: p, Regions: catalog.MustDefault(), PDF: r})
	return srv.Mux()
}

func samplePlan() domain.Plan {
	dest := "Bali, Indonesia"
	cost, _ := domain.NewCostBreakdown(100, 800, 30, 5)
	cands, _ := catalog.MustDefault().Destinations("Asia")
	return domain.Plan{
		Request:    domain.PlanRequest{Region: "Asia", Nights: 5},
		Candidates: cands,
		Report: domain.Report{
			RawText:     "**Destination**: Bali, Indonesia\n",
			Text:        "**Destination**: Bali, Indonesia\n\n**Detailed Expenses**: ...",
			Destination: &dest,
			Cost:        &cost,
			Reviews:     []string{"Gorgeous beaches!", "Some crowded spots."},
		},
	}
}

func TestHealthz(t *testing.T) {
	rr := httptest.NewRecorder()
	newServer(&fakePlanner{}, &fakeRenderer{}).ServeHTTP(rr, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestListRegions_ETag(t *testing.T) {
	h := newServer(&fakePlanner{}, &fakeRenderer{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/regions", nil))
	require.Equal(t, 200, rr.Code)

	var regions []struct {
		Name         string `json:"name"`
		Destinations []struct {
			Name string `json:"name"`
		} `json:"destinations"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &regions))
	require.Len(t, regions, 6)
	assert.Equal(t, "Asia", regions[0].Name)
	assert.Equal(t, "Osaka, Japan", regions[0].Destinations[0].Name)

	etag := rr.Header().Get("ETag")
	require.NotEmpty(t, etag)
	req := httptest.NewRequest("GET", "/v1/regions", nil)
	req.Header.Set("If-None-Match", etag)
	rr2 := httptest.NewRecorder()
	h.ServeHTTP(rr2, req)
	assert.Equal(t, http.StatusNotModified, rr2.Code)
}

func TestRecommend_OK(t *testing.T) {
	p := &fakePlanner{plan: samplePlan()}
	rr := httptest.NewRecorder()
	body := `{"region":"asia","preferences":"beaches","budget":1500,"nights":5,"origin_code":"LHR","origin_name":"London"}`
	newServer(p, &fakeRenderer{}).ServeHTTP(rr, httptest.NewRequest("POST", "/v1/recommendations", strings.NewReader(body)))
	require.Equal(t, 200, rr.Code, rr.Body.String())

	assert.Equal(t, domain.PlanRequest{Region: "asia", Preferences: "beaches", Budget: 1500, Nights: 5, OriginCode: "LHR", OriginName: "London"}, p.got)

	var out struct {
		Region      string   `json:"region"`
		Destination *string  `json:"destination"`
		Reviews     []string `json:"reviews"`
		Candidates  []any    `json:"candidates"`
		Cost        *struct {
			Total float64 `json:"total"`
		} `json:"cost"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "Asia", out.Region)
	require.NotNil(t, out.Destination)
	assert.Equal(t, "Bali, Indonesia", *out.Destination)
	assert.Len(t, out.Candidates, 3)
	require.NotNil(t, out.Cost)
	assert.Equal(t, 100.0*5+800+30*5, out.Cost.Total)
}

func TestRecommend_BadBody(t *testing.T) {
	for _, body := range []string{"{", `{"region":"Asia","unknown":1}`, `{"nights":"five"}`} {
		rr := httptest.NewRecorder()
		newServer(&fakePlanner{}, &fakeRenderer{}).ServeHTTP(rr, httptest.NewRequest("POST", "/v1/recommendations", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
	}
}

func TestRecommend_OmittedNumbersDefaultExplicitZeroKept(t *testing.T) {
	p := &fakePlanner{plan: samplePlan()}
	newServer(p, &fakeRenderer{}).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/v1/recommendations", strings.NewReader(`{"region":"Asia"}`)))
	assert.Equal(t, float64(domain.DefaultBudget), p.got.Budget)
	assert.Equal(t, domain.DefaultNights, p.got.Nights)

	newServer(p, &fakeRenderer{}).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/v1/recommendations", strings.NewReader(`{"region":"Asia","budget":0,"nights":0}`)))
	assert.Equal(t, 0.0, p.got.Budget)
	assert.Equal(t, 0, p.got.Nights)
}

func TestRecommend_EmptyRegion(t *testing.T) {
	p := &fakePlanner{plan: samplePlan()}
	rr := httptest.NewRecorder()
	newServer(p, &fakeRenderer{}).ServeHTTP(rr, httptest.NewRequest("POST", "/v1/recommendations", strings.NewReader(`{"region":"  "}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, p.got.Region, "planner must not run")
}

func TestRecommend_InvalidRequest(t *testing.T) {
	p := &fakePlanner{err: errors.Join(domain.ErrInvalidRequest, errors.New("nights must be positive"))}
	rr := httptest.NewRecorder()
	newServer(p, &fakeRenderer{}).ServeHTTP(rr, httptest.NewRequest("POST", "/v1/recommendations", strings.NewReader(`{"region":"Asia","nights":-1}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecommendPDF(t *testing.T) {
	r := &fakeRenderer{}
	rr := httptest.NewRecorder()
	newServer(&fakePlanner{plan: samplePlan()}, r).ServeHTTP(rr, httptest.NewRequest("POST", "/v1/recommendations/pdf", strings.NewReader(`{"region":"Asia"}`)))
	require.Equal(t, 200, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment; filename=\"recommendation-")
	assert.Equal(t, []string{samplePlan().Report.Text}, r.got)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "%PDF"))
}

func TestRecommendPDF_RenderFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	newServer(&fakePlanner{plan: samplePlan()}, &fakeRenderer{err: errors.New("disk")}).
		ServeHTTP(rr, httptest.NewRequest("POST", "/v1/recommendations/pdf", strings.NewReader(`{"region":"Asia"}`)))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
