package cli

import (
	"context"
	"fmt"

	"github.com/jzembower/balance/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and manage past focus analyses",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryRmCmd(app),
		newHistoryClearCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past analyses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				analyses []*domain.FocusAnalysis
				err      error
			)
			if mine {
				user, uerr := app.Session.CurrentUser(ctx)
				if uerr != nil {
					return uerr
				}
				analyses, err = app.History.ListForUser(ctx, user.ID)
			} else {
				analyses, err = app.History.List(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderHistory(analyses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "Only analyses stamped with the current user")

	return cmd
}

func newHistoryRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one analysis by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.History.DeleteByID(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newHistoryClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.History.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	}
}
