package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRateLimitCommand creates the ratelimit command.
func NewRateLimitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ratelimit",
		Short: "Show the current rate-limit window",
		Long:  "Issue a cheap request and report the rate-limit headers the API returned",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Any response refreshes the snapshot. Errors still carry
			// headers, so only bail when there is no snapshot at all.
			_, reqErr := client.Users().GetAuthenticated(context.Background())

			limit := client.LastRateLimit()
			if limit == nil {
				if reqErr != nil {
					return fmt.Errorf("failed to reach the API: %w", reqErr)
				}

				_, _ = os.Stdout.WriteString("No rate-limit information available\n")

				return nil
			}

			structured, err := renderStructured(limit)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			if remaining, ok := limit.Remaining(); ok {
				_ = table.Append("Remaining", strconv.Itoa(remaining))
			} else {
				_ = table.Append("Remaining", NotAvailable)
			}

			if reset, ok := limit.WindowReset(); ok {
				_ = table.Append("Window Resets", reset.Format(timeFormat))
			} else {
				_ = table.Append("Window Resets", NotAvailable)
			}

			if retryAfter, ok := limit.RetryAfter(); ok {
				_ = table.Append("Retry After", retryAfter.String())
			}

			_ = table.Append("Observed", limit.ObservedAt.Format(timeFormat))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
