package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"travel_planner/internal/domain"
)

const destinationMarker = "**Destination**: "

// ParseDestination extracts the text after the destination marker up to the
// end of that line.
func ParseDestination(text string) (string, bool) {
	i := strings.Index(text, destinationMarker)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(destinationMarker):]
	if j := strings.IndexByte(rest, '\n'); j >= 0 {
		rest = rest[:j]
	}
	name := strings.TrimSpace(rest)
	return name, name != ""
}

// ReportAssembler enriches model output with cost estimates and reviews.
type ReportAssembler struct {
	costs   *CostAggregator
	catalog domain.Catalog
}

func NewReportAssembler(c *CostAggregator, cat domain.Catalog) *ReportAssembler {
	return &ReportAssembler{costs: c, catalog: cat}
}

func (a *ReportAssembler) Assemble(ctx context.Context, raw, originCode, originName string, nights int) domain.Report {
	rep := domain.Report{RawText: raw, Text: raw}

	name, ok := ParseDestination(raw)
	if !ok {
		log.Info().Msg("no destination marker in recommendation, skipping expenses and reviews")
		return rep
	}
	rep.Destination = &name

	dest, ok := a.catalog.Lookup(name)
	if !ok {
		log.Info().Str("destination", name).Msg("recommended destination not in catalog, skipping expenses and reviews")
		return rep
	}

	cost, err := a.costs.Estimate(ctx, dest, originCode, originName, nights)
	if err != nil {
		log.Warn().Err(err).Str("destination", name).Msg("cost estimate rejected")
		return rep
	}
	reviews := a.Reviews(name)

	rep.Cost = &cost
	rep.Reviews = reviews
	rep.Text = raw + FormatExpenses(cost) + FormatReviews(reviews)
	return rep
}

func (a *ReportAssembler) Reviews(name string) []string {
	return a.catalog.Reviews(name)
}

func FormatExpenses(c domain.CostBreakdown) string {
	return fmt.Sprintf("\n**Detailed Expenses**: Hotel $%.2f/night, Flight $%.2f, Food $%.2f/day, Total $%.2f",
		c.HotelPerNight, c.Flight, c.DailyFood, c.Total())
}

func FormatReviews(reviews []string) string {
	return "\n**Review Summary**: " + strings.Join(reviews, ", ")
}
