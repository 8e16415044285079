package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"travel_planner/internal/adapters/observability"
	"travel_planner/internal/domain"
)

const searchResultCount = 10

// TrendResolver picks the catalog destinations a live search says are trending.
// It never fails: a broken or unhelpful search degrades to the region's full
// catalog list.
type TrendResolver struct {
	search  domain.SearchClient
	catalog domain.Catalog
}

func NewTrendResolver(s domain.SearchClient, c domain.Catalog) *TrendResolver {
	return &TrendResolver{search: s, catalog: c}
}

func TrendQuery(region string) string {
	return "trending travel destinations " + region
}

func (r *TrendResolver) Resolve(ctx context.Context, region string) []domain.Destination {
	places, ok := r.catalog.Destinations(region)
	if !ok {
		log.Info().Str("region", region).Msg("region not in catalog")
		return []domain.Destination{}
	}

	results, err := r.search.Search(ctx, TrendQuery(region), searchResultCount)
	if err != nil {
		log.Warn().Err(err).Str("region", region).Msg("trend search failed, using catalog")
		observability.ObserveFallback("trends", "search_error")
		return places
	}

	matched := matchTitles(results, places)
	if len(matched) == 0 {
		log.Info().Str("region", region).Int("results", len(results)).Msg("no trending matches, using catalog")
		observability.ObserveFallback("trends", "no_match")
		return places
	}
	return matched
}

// matchTitles walks titles in result order and, per title, the places in
// catalog order. Each place is kept once.
func matchTitles(results []domain.SearchResult, places []domain.Destination) []domain.Destination {
	lower := make([]string, len(places))
	for i, p := range places {
		lower[i] = strings.ToLower(p.Name)
	}
	seen := make(map[string]bool, len(places))
	var out []domain.Destination
	for _, res := range results {
		title := strings.ToLower(res.Title)
		if title == "" {
			continue
		}
		for i, p := range places {
			if !seen[p.Name] && strings.Contains(title, lower[i]) {
				seen[p.Name] = true
				out = append(out, p)
			}
		}
	}
	return out
}
