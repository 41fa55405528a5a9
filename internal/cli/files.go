package cli

import (
	"fmt"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/sanitizer"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <remote> [path]",
		Short: "List a directory on a remote or on this machine",
		Long: `List one directory. Use the local label (default "This PC") as the remote
to browse the local disks; at "/" it lists the available volumes.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote := args[0]
			path := "/"
			if len(args) == 2 {
				path = args[1]
			}
			if err := sanitizer.ValidateRemoteName(remote); err != nil {
				return err
			}

			items, err := a.lister.ListDir(cmd.Context(), remote, path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flags.JSON {
				return writeJSON(out, items)
			}

			table := newTable(out, "Type", "Size", "Modified", "Name")
			for _, item := range items {
				table.Append(itemRow(item))
			}
			table.Render()
			return nil
		},
	}
}

func itemRow(item models.FileItem) []string {
	kind, size := "file", humanize.Bytes(uint64(max(item.Size, 0)))
	if item.IsDir {
		kind, size = "dir", "-"
	}
	return []string{kind, size, item.Modified, item.Name}
}

func newCopyCommand(a *app) *cobra.Command {
	var opts models.CopyOptions

	cmd := &cobra.Command{
		Use:   "cp <from-remote> <to-remote> <to-path> <paths...>",
		Short: "Copy items from one remote into a directory of another",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := transferRequest(args, opts)
			if err != nil {
				return err
			}

			jobID, err := a.transfers.Copy(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJobID(cmd, a, jobID)
		},
	}

	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "let rclone update modification times of existing files")
	cmd.Flags().BoolVar(&opts.SkipExisting, "skip-existing", false, "skip files that already exist at the destination")

	return cmd
}

func newMoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from-remote> <to-remote> <to-path> <paths...>",
		Short: "Move items from one remote into a directory of another",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := transferRequest(args, models.CopyOptions{})
			if err != nil {
				return err
			}

			jobID, err := a.transfers.Move(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJobID(cmd, a, jobID)
		},
	}
}

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <remote> <paths...>",
		Short: "Delete files from a remote",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.DeleteRequest{Remote: args[0], Paths: args[1:]}
			if err := sanitizer.ValidateRemoteName(req.Remote); err != nil {
				return err
			}

			if err := a.transfers.Delete(cmd.Context(), req); err != nil {
				return err
			}

			if a.flags.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]int{"deleted": len(req.Paths)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d item(s)\n", len(req.Paths))
			return nil
		},
	}
}

func transferRequest(args []string, opts models.CopyOptions) (models.TransferRequest, error) {
	req := models.TransferRequest{
		FromRemote: args[0],
		ToRemote:   args[1],
		ToPath:     args[2],
		FromPaths:  args[3:],
		Options:    opts,
	}
	if err := sanitizer.ValidateRemoteName(req.FromRemote); err != nil {
		return req, fmt.Errorf("from-remote: %w", err)
	}
	if err := sanitizer.ValidateRemoteName(req.ToRemote); err != nil {
		return req, fmt.Errorf("to-remote: %w", err)
	}
	return req, nil
}

func printJobID(cmd *cobra.Command, a *app, jobID string) error {
	if a.flags.JSON {
		return writeJSON(cmd.OutOrStdout(), map[string]string{"job_id": jobID})
	}
	fmt.Fprintln(cmd.OutOrStdout(), jobID)
	return nil
}
