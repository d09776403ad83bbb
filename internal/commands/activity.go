package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sentra-dev/sentra/internal/format"
)

func newActivityCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent account activity",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			if a.activity == nil {
				warning(cmd, "Activity history is disabled (activity.path is empty)")
				return nil
			}
			entries, err := a.activity.Read()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				warning(cmd, "No activity recorded in %s yet", a.activity.Path())
				return nil
			}

			rows := pterm.TableData{{"When", "Action", "Details", "Ref"}}
			// Newest first.
			for i := len(entries) - 1; i >= 0 && len(rows) <= limit; i-- {
				e := entries[i]
				rows = append(rows, []string{format.DateTime(e.Timestamp), e.Action, e.Details, e.Ref})
			}
			return table(cmd, rows)
		}),
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of entries to show")

	return cmd
}
