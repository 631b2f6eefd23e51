package cli

import (
	"github.com/jzembower/balance/internal/analysis"
	"github.com/jzembower/balance/internal/health"
	"github.com/jzembower/balance/internal/repository"
	"github.com/jzembower/balance/internal/session"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Analysis *analysis.Service
	History  repository.AnalysisRepo
	Session  *session.Manager

	// HealthSource builds the health data source for a scenario. Wired to
	// the deterministic mock until a device integration exists.
	HealthSource func(health.Scenario) health.Source

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "balance" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "balance",
		Short: "Personal focus analysis from health and activity data",
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newHistoryCmd(app),
		newUserCmd(app),
	)

	return root
}
