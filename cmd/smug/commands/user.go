package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/spf13/cobra"
)

// NewUserCommand creates the user command.
func NewUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user [NICKNAME]",
		Short: "Show a SmugMug user",
		Long:  "Show the authenticated user, or the user with the given nickname",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var user *smugmug.User

			if len(args) == 0 {
				user, err = client.Users().GetAuthenticated(ctx)
				if err != nil {
					return fmt.Errorf("failed to get authenticated user: %w", err)
				}
			} else {
				user, err = client.Users().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get user '%s': %w", args[0], err)
				}
			}

			structured, err := renderStructured(user)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("NickName", orNotAvailable(user.NickName))
			_ = table.Append("Name", orNotAvailable(user.Name))
			_ = table.Append("Plan", orNotAvailable(user.Plan))
			_ = table.Append("TimeZone", orNotAvailable(user.TimeZone))
			_ = table.Append("Web", orNotAvailable(user.WebURI))
			_ = table.Append("Root Node", orNotAvailable(user.Uris.Node))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
