package cli

import (
	"github.com/spf13/cobra"
)

func newRemotesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remotes",
		Short: "List configured rclone remotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			remotes, err := a.catalog.ListRemotes(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flags.JSON {
				return writeJSON(out, remotes)
			}

			table := newTable(out, "Name", "Provider", "Status")
			for _, r := range remotes {
				table.Append([]string{r.Name, r.Provider, r.Status})
			}
			table.Render()
			return nil
		},
	}
}
