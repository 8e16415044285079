package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_planner/internal/app"
	"travel_planner/internal/catalog"
)

func TestResolve_FailingSearchReturnsCatalogForEveryRegion(t *testing.T) {
	cat := catalog.MustDefault()
	r := app.NewTrendResolver(&fakeSearch{err: errDown}, cat)

	for _, region := range cat.Regions() {
		want, _ := cat.Destinations(region)
		got := r.Resolve(context.Background(), region)
		assert.Equal(t, want, got, region)
	}
}

func TestResolve_UnknownRegion(t *testing.T) {
	s := &fakeSearch{results: titles("Atlantis is trending")}
	r := app.NewTrendResolver(s, catalog.MustDefault())

	for _, region := range []string{"Antarctica", "", "asia"} {
		got := r.Resolve(context.Background(), region)
		assert.NotNil(t, got)
		assert.Empty(t, got, region)
	}
	assert.Empty(t, s.queries, "search must not be called for unknown regions")
}

func TestResolve_MatchesTitlesCaseInsensitive(t *testing.T) {
	s := &fakeSearch{results: titles(
		"10 reasons to visit KUALA LUMPUR, MALAYSIA",
		"Why Osaka, Japan and Bali, Indonesia top 2025 lists",
		"More on kuala lumpur, malaysia",
	)}
	r := app.NewTrendResolver(s, catalog.MustDefault())

	got := r.Resolve(context.Background(), "Asia")
	assert.Equal(t, []string{"Kuala Lumpur, Malaysia", "Osaka, Japan", "Bali, Indonesia"}, names(got))
	require.Len(t, s.queries, 1)
	assert.Equal(t, "trending travel destinations Asia", s.queries[0])
}

func TestResolve_NoMatchesFallsBack(t *testing.T) {
	s := &fakeSearch{results: titles("Best beaches in the world", "")}
	cat := catalog.MustDefault()
	r := app.NewTrendResolver(s, cat)

	want, _ := cat.Destinations("Europe")
	assert.Equal(t, want, r.Resolve(context.Background(), "Europe"))
}

func TestResolve_EmptyResultsFallsBack(t *testing.T) {
	cat := catalog.MustDefault()
	r := app.NewTrendResolver(&fakeSearch{}, cat)

	want, _ := cat.Destinations("Africa")
	assert.Equal(t, want, r.Resolve(context.Background(), "Africa"))
}
