package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"rcloneexplorer/internal/config"
	"rcloneexplorer/internal/executor"
	"rcloneexplorer/internal/interfaces"
	"rcloneexplorer/internal/listing"
	"rcloneexplorer/internal/logging"
	"rcloneexplorer/internal/provision"
	"rcloneexplorer/internal/rclone"
)

// app carries the loaded configuration and the components commands act on.
// Components already set are kept, which lets tests inject doubles.
type app struct {
	flags      GlobalFlags
	configPath string
	cfg        *config.Config
	logCloser  io.Closer
	logOutput  io.Writer

	catalog     interfaces.RemoteCatalog
	lister      interfaces.DirectoryLister
	transfers   interfaces.TransferExecutor
	provisioner interfaces.ToolProvisioner
}

func (a *app) init() error {
	if a.cfg == nil {
		a.configPath = a.flags.configPath()
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		a.cfg = cfg
	}

	a.setupLogging()
	slog.Debug("configuration loaded", "config_path", a.configPath)

	// Components read the rclone settings on every call so a reloaded
	// config file takes effect without a restart.
	prov := provision.NewWithSource(func() provision.Config {
		rc := a.cfg.GetRClone()
		return provision.Config{
			InstallDir:      rc.InstallDir,
			DownloadBaseURL: rc.DownloadBaseURL,
		}
	})
	runner := rclone.NewResolvingRunnerFunc(func() string {
		return rclone.ResolveBinary(a.cfg.GetRClone().Binary, prov.ExecutablePath())
	})

	if a.catalog == nil {
		a.catalog = rclone.NewCatalog(runner)
	}
	if a.lister == nil {
		a.lister = listing.NewLister(runner, listing.WithLocalLabelFunc(func() string {
			return a.cfg.GetRClone().LocalLabel
		}))
	}
	if a.transfers == nil {
		a.transfers = executor.NewTransferExecutor(runner)
	}
	if a.provisioner == nil {
		a.provisioner = prov
	}
	return nil
}

// setupLogging (re)installs the default logger from the current config,
// applying the --log-level override.
func (a *app) setupLogging() {
	logCfg := a.cfg.GetLogging()
	if a.flags.LogLevel != "" {
		logCfg.Level = a.flags.LogLevel
	}

	out := a.logOutput
	if out == nil {
		out = os.Stderr
	}

	previous := a.logCloser
	a.logCloser = logging.Setup(logCfg, out)
	if previous != nil {
		previous.Close()
	}
}

func (a *app) close() {
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}
