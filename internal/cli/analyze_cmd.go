package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jzembower/balance/internal/domain"
	"github.com/jzembower/balance/internal/health"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		activity string
		duration float64
		stress   int
		focus    int
		scenario string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a focus analysis on current health data and a self-report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			interactive := app.IsInteractive()

			// No activity flag on an interactive terminal means the user
			// wants the form.
			if activity == "" && interactive {
				if err := runInputForm(&activity, &duration, &stress, &focus); err != nil {
					return err
				}
			}

			input := domain.UserInput{
				Activity:      activity,
				DurationHours: duration,
				StressLevel:   stress,
				FocusLevel:    focus,
				Timestamp:     time.Now().UTC(),
			}

			sc, err := health.ParseScenario(scenario)
			if err != nil {
				return err
			}
			data, err := app.HealthSource(sc).Fetch(ctx)
			if err != nil {
				return fmt.Errorf("fetching health data: %w", err)
			}

			// Advisory warnings are shown up front; they never block.
			for _, w := range data.Validate().Warnings {
				fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("warning: "+w))
			}
			for _, w := range input.Validate().Warnings {
				fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("warning: "+w))
			}

			record, err := runWithSpinner(ctx, interactive, "Analyzing your focus data...", func(ctx context.Context) (*domain.FocusAnalysis, error) {
				return app.Analysis.Analyze(ctx, data, input)
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderAnalysis(record))
			return nil
		},
	}

	registerInputFlags(cmd.Flags(), &activity, &duration, &stress, &focus)
	cmd.Flags().StringVar(&scenario, "scenario", string(health.ScenarioWellRested),
		"Mock health scenario (well-rested, stressed, very-active, sedentary, optimal)")

	return cmd
}
