// Package bootstrap wires configuration into a ready Planner for the binaries.
package bootstrap

import (
	"context"
	"fmt"

	"travel_planner/internal/adapters/llm"
	"travel_planner/internal/adapters/serpapi"
	"travel_planner/internal/adapters/skyscanner"
	"travel_planner/internal/app"
	"travel_planner/internal/catalog"
	"travel_planner/internal/shared"
)

func NewPlanner(ctx context.Context, cfg shared.Config) (*app.Planner, *catalog.Catalog, error) {
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	model, err := llm.New(ctx, llm.Config{
		Provider:  cfg.LLMProvider,
		OllamaURL: cfg.OllamaURL,
		Model:     cfg.LLMModel,
		GeminiKey: cfg.GeminiKey,
		Timeout:   cfg.LLMTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init language model: %w", err)
	}
	sky := skyscanner.New(skyscanner.Config{
		Base:          cfg.RapidAPIBase,
		Host:          cfg.RapidAPIHost,
		Key:           cfg.RapidAPIKey,
		OriginID:      cfg.OriginID,
		DestinationID: cfg.DestinationID,
		Timeout:       cfg.HTTPTimeout,
	})
	p := app.NewPlannerFromDeps(app.Deps{
		Search:  serpapi.New(cfg.SerpAPIBase, cfg.SerpAPIKey, cfg.HTTPTimeout),
		Flights: sky,
		Hotels:  sky,
		Model:   model,
		Catalog: cat,
	})
	return p, cat, nil
}
