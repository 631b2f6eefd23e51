package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Session.CurrentUser(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", titleStyle.Render(user.DisplayName()))
			fmt.Fprintf(cmd.OutOrStdout(), "id:      %s\n", user.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "created: %s\n", user.CreatedAt.Local().Format("2006-01-02"))
			if user.TestMode {
				fmt.Fprintln(cmd.OutOrStdout(), faintStyle.Render("test mode"))
			}
			return nil
		},
	}
}
