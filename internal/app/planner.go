package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"travel_planner/internal/domain"
)

// Planner runs one recommendation cycle: trends, recommendation, report.
type Planner struct {
	trends    *TrendResolver
	engine    *RecommendationEngine
	assembler *ReportAssembler
}

func NewPlanner(t *TrendResolver, e *RecommendationEngine, a *ReportAssembler) *Planner {
	return &Planner{trends: t, engine: e, assembler: a}
}

// Deps bundles the collaborators a Planner is built from.
type Deps struct {
	Search  domain.SearchClient
	Flights domain.FlightQuoter
	Hotels  domain.HotelQuoter
	Model   domain.LanguageModel
	Catalog domain.Catalog
}

func NewPlannerFromDeps(d Deps) *Planner {
	costs := NewCostAggregator(d.Flights, d.Hotels, d.Catalog)
	return NewPlanner(
		NewTrendResolver(d.Search, d.Catalog),
		NewRecommendationEngine(d.Model),
		NewReportAssembler(costs, d.Catalog),
	)
}

// NormalizeRegion title-cases user input so "north america" matches the catalog.
func NormalizeRegion(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// Plan only fails on an invalid request; collaborator failures degrade the
// result instead.
func (p *Planner) Plan(ctx context.Context, req domain.PlanRequest) (domain.Plan, error) {
	req = req.WithDefaults()
	req.Region = NormalizeRegion(req.Region)
	if err := req.Validate(); err != nil {
		return domain.Plan{}, err
	}

	candidates := p.trends.Resolve(ctx, req.Region)
	log.Info().Str("region", req.Region).Int("candidates", len(candidates)).Msg("trends resolved")

	raw := p.engine.Recommend(ctx, domain.RecommendationRequest{
		Region:      req.Region,
		Preferences: req.Preferences,
		Budget:      req.Budget,
		Nights:      req.Nights,
		Candidates:  candidates,
	})
	log.Debug().Str("region", req.Region).Str("text", raw).Msg("recommendation generated")

	rep := p.assembler.Assemble(ctx, raw, req.OriginCode, req.OriginName, req.Nights)
	return domain.Plan{Request: req, Candidates: candidates, Report: rep}, nil
}
