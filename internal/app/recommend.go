package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"travel_planner/internal/adapters/observability"
	"travel_planner/internal/domain"
)

// RecommendationEngine asks the language model to choose among the candidates.
type RecommendationEngine struct {
	model domain.LanguageModel
}

func NewRecommendationEngine(m domain.LanguageModel) *RecommendationEngine {
	return &RecommendationEngine{model: m}
}

func NoDestinationsMessage(region string) string {
	return fmt.Sprintf("No trending places found for %s. Please try another region.", region)
}

func GenerationErrorMessage(region string) string {
	return fmt.Sprintf("Error generating recommendation for %s.", region)
}

// Recommend returns the model's raw text, or one of the fixed messages above.
func (e *RecommendationEngine) Recommend(ctx context.Context, req domain.RecommendationRequest) string {
	if len(req.Candidates) == 0 {
		return NoDestinationsMessage(req.Region)
	}
	out, err := e.model.Generate(ctx, BuildPrompt(req))
	if err != nil {
		log.Warn().Err(err).Str("region", req.Region).Msg("recommendation generation failed")
		observability.ObserveFallback("llm", "generate_error")
		return GenerationErrorMessage(req.Region)
	}
	return out
}

func BuildPrompt(req domain.RecommendationRequest) string {
	names := make([]string, len(req.Candidates))
	for i, c := range req.Candidates {
		names[i] = c.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a travel expert. Recommend the best destination in %s based on preferences and budget. "+
		"Provide a brief reason, estimated cost, and review summary.\n\n", req.Region)
	fmt.Fprintf(&b, "Trending places: %s.\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Preferences: %s.\n", req.Preferences)
	fmt.Fprintf(&b, "Budget: $%s for %d nights.\n", strconv.FormatFloat(req.Budget, 'f', -1, 64), req.Nights)
	b.WriteString("Format:\n")
	b.WriteString(destinationMarker + "<place>\n")
	b.WriteString("**Why**: <reason>\n")
	b.WriteString("**Estimated Cost**: <total cost>\n")
	b.WriteString("**Reviews**: <summary>\n")
	return b.String()
}
