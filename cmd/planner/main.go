package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"travel_planner/internal/adapters/observability"
	"travel_planner/internal/adapters/pdf"
	"travel_planner/internal/bootstrap"
	"travel_planner/internal/domain"
	"travel_planner/internal/shared"
)

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Recommend a trending travel destination and save it as a PDF",
		Long: `planner looks up trending destinations for a region, asks a language
model to pick one that fits your preferences and budget, prices the trip
(flight, hotel, food) and writes the recommendation to a PDF.

Values not given as flags are asked for interactively; press enter to accept
the default.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.set = map[string]bool{}
			for _, name := range []string{"region", "preferences", "budget", "nights", "origin", "origin-name"} {
				o.set[name] = cmd.Flags().Changed(name)
			}
			return execute(cmd.Context(), o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.Region, "region", "", "region to search (e.g. Asia, Europe)")
	f.StringVar(&o.Preferences, "preferences", "", "free-text travel preferences")
	f.IntVar(&o.Budget, "budget", domain.DefaultBudget, "budget in USD")
	f.IntVar(&o.Nights, "nights", domain.DefaultNights, "number of nights")
	f.StringVar(&o.OriginCode, "origin", "", "origin airport code (default NYCA)")
	f.StringVar(&o.OriginName, "origin-name", "", "origin city name (default New York)")
	f.StringVar(&o.Out, "out", "", "PDF output path (default $OUTPUT_PATH or travel_recommendations.pdf)")
	f.BoolVar(&o.NoPrompt, "no-prompt", false, "never prompt; use flags and defaults only")
	return cmd
}

func execute(ctx context.Context, o options) error {
	cfg := configure(os.Stderr, uuid.NewString())
	observability.Serve(cfg.MetricsAddr, observability.InitRegistry())

	if o.Out == "" {
		o.Out = cfg.OutputPath
	}

	p, cat, err := bootstrap.NewPlanner(ctx, cfg)
	if err != nil {
		return err
	}
	s := &session{
		planner: p,
		writer:  pdf.NewWriter(),
		regions: cat.Regions(),
		in:      os.Stdin,
		out:     os.Stdout,
	}
	return s.run(ctx, o)
}

// configure installs the run's logger before loading .env and the config, so
// their warnings carry run_id. The logger is rebuilt if .env changed APP_ENV.
func configure(w io.Writer, runID string) shared.Config {
	setLogger := func(env string) {
		log.Logger = observability.NewLoggerTo(env, w).With().Str("run_id", runID).Logger()
	}
	env := os.Getenv("APP_ENV")
	setLogger(env)

	shared.LoadDotEnv()
	cfg := shared.Load()
	if cfg.AppEnv != env {
		setLogger(cfg.AppEnv)
	}
	return cfg
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("planner failed")
		os.Exit(1)
	}
}
