package app_test

import (
	"context"
	"errors"

	"travel_planner/internal/domain"
)

var errDown = errors.New("upstream down")

// ---- fakes ----

type fakeSearch struct {
	results []domain.SearchResult
	err     error
	queries []string
}

func (f *fakeSearch) Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

type fakeFlights struct {
	price float64
	err   error
	last  domain.FlightQuery
}

func (f *fakeFlights) OneWayPrice(ctx context.Context, q domain.FlightQuery) (float64, error) {
	f.last = q
	return f.price, f.err
}

type fakeHotels struct {
	prices []float64
	err    error
	last   domain.HotelQuery
}

func (f *fakeHotels) HotelPrices(ctx context.Context, q domain.HotelQuery) ([]float64, error) {
	f.last = q
	return f.prices, f.err
}

type fakeModel struct {
	out     string
	err     error
	prompts []string
}

func (f *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.out, f.err
}

func titles(ts ...string) []domain.SearchResult {
	out := make([]domain.SearchResult, len(ts))
	for i, t := range ts {
		out[i] = domain.SearchResult{Title: t}
	}
	return out
}

func names(ds []domain.Destination) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}
	return out
}
