package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"travel_planner/internal/adapters/console"
	"travel_planner/internal/app"
	"travel_planner/internal/domain"
)

type options struct {
	Region      string
	Preferences string
	Budget      int
	Nights      int
	OriginCode  string
	OriginName  string
	Out         string
	NoPrompt    bool

	// set names the flags given on the command line; those are never prompted
	set map[string]bool
}

type planner interface {
	Plan(ctx context.Context, req domain.PlanRequest) (domain.Plan, error)
}

type session struct {
	planner planner
	writer  domain.ReportWriter
	regions []string
	in      io.Reader
	out     io.Writer
}

// collect fills every option not given by flag, asking on the console unless
// NoPrompt. An empty answer takes the default; a typed value, zero included,
// is kept as entered.
func (s *session) collect(o options) (domain.PlanRequest, error) {
	fmt.Fprintf(s.out, "Supported regions: %s\n", strings.Join(s.regions, ", "))

	req := domain.PlanRequest{
		Region:      o.Region,
		Preferences: o.Preferences,
		Budget:      float64(o.Budget),
		Nights:      o.Nights,
		OriginCode:  o.OriginCode,
		OriginName:  o.OriginName,
	}
	if !o.set["budget"] {
		req.Budget = domain.DefaultBudget
	}
	if !o.set["nights"] {
		req.Nights = domain.DefaultNights
	}

	ask := !o.NoPrompt
	p := console.NewPrompter(s.in, s.out)
	if ask && !o.set["region"] {
		req.Region = p.Ask("Enter region (e.g., Asia, Europe): ", "")
	}
	if region := app.NormalizeRegion(req.Region); !s.supported(region) {
		fmt.Fprintf(s.out, "Region '%s' not in supported list.\n", region)
	}
	if !ask {
		return req.WithDefaults(), nil
	}

	if !o.set["preferences"] {
		req.Preferences = p.Ask("Enter preferences (e.g., culture, adventure): ", domain.DefaultPreferences)
	}
	if !o.set["budget"] {
		b, err := p.AskInt("Enter budget ($): ", domain.DefaultBudget)
		if err != nil {
			return req, fmt.Errorf("budget: %w", err)
		}
		req.Budget = float64(b)
	}
	if !o.set["nights"] {
		n, err := p.AskInt("Enter nights: ", domain.DefaultNights)
		if err != nil {
			return req, fmt.Errorf("nights: %w", err)
		}
		req.Nights = n
	}
	if !o.set["origin"] {
		req.OriginCode = p.Ask("Enter origin airport code (e.g., NYCA): ", domain.DefaultOriginCode)
	}
	if !o.set["origin-name"] {
		req.OriginName = p.Ask("Enter origin city (e.g., New York): ", domain.DefaultOriginName)
	}
	return req.WithDefaults(), nil
}

func (s *session) supported(region string) bool {
	for _, r := range s.regions {
		if r == region {
			return true
		}
	}
	return false
}

// run performs one recommendation cycle and writes the document.
func (s *session) run(ctx context.Context, o options) error {
	req, err := s.collect(o)
	if err != nil {
		return err
	}

	plan, err := s.planner.Plan(ctx, req)
	if err != nil {
		return err
	}
	if len(plan.Candidates) == 0 {
		fmt.Fprintf(s.out, "No trends found for %s.\n", plan.Request.Region)
	}

	fmt.Fprintln(s.out, plan.Report.Text)
	fmt.Fprintln(s.out, strings.Repeat("-", 50))

	if err := s.writer.WriteReports([]string{plan.Report.Text}, o.Out); err != nil {
		return err
	}
	log.Info().Str("path", o.Out).Msg("saved")
	fmt.Fprintf(s.out, "Saved to %s\n", o.Out)
	return nil
}
