package cli

import (
	"context"
	"fmt"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/provision"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
)

func newRcloneCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rclone",
		Short: "Manage the rclone executable used by rcloneexplorer",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show whether the managed rclone is installed and its version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := a.provisioner.CheckVersion(cmd.Context())

			out := cmd.OutOrStdout()
			if a.flags.JSON {
				return writeJSON(out, info)
			}

			if !info.Installed {
				fmt.Fprintf(out, "rclone is not installed at %s\n", info.Path)
				return nil
			}
			version := "unknown"
			if info.Version != nil {
				version = *info.Version
			}
			fmt.Fprintf(out, "rclone %s (%s)\n", version, info.Path)
			return nil
		},
	})

	install := func(cmd *cobra.Command, run func(context.Context, provision.ProgressSink) (string, error)) error {
		bar := newDownloadBar(cmd, !a.flags.JSON)
		message, err := run(cmd.Context(), bar)
		bar.finish()
		if err != nil {
			return err
		}

		if a.flags.JSON {
			return writeJSON(cmd.OutOrStdout(), map[string]string{"message": message})
		}
		fmt.Fprintln(cmd.OutOrStdout(), message)
		return nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: "Download and install the latest rclone release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return install(cmd, a.provisioner.Install)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "update",
		Short: "Replace the managed rclone with the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return install(cmd, a.provisioner.Update)
		},
	})

	return cmd
}

// downloadBar renders download progress on the command's error stream. It
// starts on the first event so the total is known.
type downloadBar struct {
	cmd     *cobra.Command
	enabled bool
	bar     *pb.ProgressBar
}

func newDownloadBar(cmd *cobra.Command, enabled bool) *downloadBar {
	return &downloadBar{cmd: cmd, enabled: enabled}
}

func (d *downloadBar) Notify(progress models.DownloadProgress) {
	if !d.enabled {
		return
	}
	if d.bar == nil {
		d.bar = pb.New64(int64(progress.Total))
		d.bar.Set(pb.Bytes, true)
		d.bar.SetWriter(d.cmd.ErrOrStderr())
		d.bar.Start()
	}
	if progress.Total > 0 {
		d.bar.SetTotal(int64(progress.Total))
	}
	d.bar.SetCurrent(int64(progress.Downloaded))
}

func (d *downloadBar) finish() {
	if d.bar != nil {
		d.bar.Finish()
	}
}
