package cli

import (
	"rcloneexplorer/internal/version"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the rcloneexplorer command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rcloneexplorer",
		Short: "Browse and transfer files across rclone remotes",
		Long: `rcloneexplorer lists, copies, moves and deletes files on any configured
rclone remote and on the local machine, and manages its own rclone install.
Run "rcloneexplorer serve" to expose the same operations over HTTP.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	AddGlobalFlags(rootCmd, &a.flags)

	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newRemotesCommand(a))
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newCopyCommand(a))
	rootCmd.AddCommand(newMoveCommand(a))
	rootCmd.AddCommand(newRemoveCommand(a))
	rootCmd.AddCommand(newJobsCommand(a))
	rootCmd.AddCommand(newRcloneCommand(a))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
