package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"rcloneexplorer/internal/config"
	"rcloneexplorer/internal/mocks"
	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/provision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app         *app
	catalog     *mocks.MockRemoteCatalog
	lister      *mocks.MockDirectoryLister
	transfers   *mocks.MockTransferExecutor
	provisioner *mocks.MockToolProvisioner
}

func setupTestApp(t *testing.T) *testApp {
	ta := &testApp{
		catalog:     mocks.NewMockRemoteCatalog(t),
		lister:      mocks.NewMockDirectoryLister(t),
		transfers:   mocks.NewMockTransferExecutor(t),
		provisioner: mocks.NewMockToolProvisioner(t),
	}
	ta.app = &app{
		cfg:         config.Default(),
		logOutput:   io.Discard,
		catalog:     ta.catalog,
		lister:      ta.lister,
		transfers:   ta.transfers,
		provisioner: ta.provisioner,
	}
	return ta
}

func (ta *testApp) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(ta.app)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRemotes_Table(t *testing.T) {
	ta := setupTestApp(t)
	ta.catalog.On("ListRemotes", mock.Anything).Return([]models.Remote{
		{Name: "gdrive", Provider: "Google Drive", Status: models.RemoteStatusConnected},
	}, nil).Once()

	out, _, err := ta.run("remotes")

	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "gdrive")
	assert.Contains(t, out, "Google Drive")
	assert.Contains(t, out, "Connected")
}

func TestRemotes_JSON(t *testing.T) {
	ta := setupTestApp(t)
	ta.catalog.On("ListRemotes", mock.Anything).Return([]models.Remote{}, nil).Once()

	out, _, err := ta.run("remotes", "--json")

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestRemotes_Error(t *testing.T) {
	ta := setupTestApp(t)
	ta.catalog.On("ListRemotes", mock.Anything).
		Return(nil, models.Errorf(models.KindToolNotFound, "Failed to execute rclone")).Once()

	_, _, err := ta.run("remotes")

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrToolNotFound))
}

func TestList_Table(t *testing.T) {
	ta := setupTestApp(t)
	ta.lister.On("ListDir", mock.Anything, "gdrive", "/docs").Return([]models.FileItem{
		{Name: "sub", Path: "/docs/sub", IsDir: true, Modified: "2024-01-01T00:00:00Z"},
		{Name: "a.txt", Path: "/docs/a.txt", Size: 2048, Modified: "2024-01-02T00:00:00Z"},
	}, nil).Once()

	out, _, err := ta.run("ls", "gdrive", "/docs")

	require.NoError(t, err)
	assert.Contains(t, out, "sub")
	assert.Contains(t, out, "dir")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "a.txt")
}

func TestList_DefaultPathAndJSON(t *testing.T) {
	ta := setupTestApp(t)
	ta.lister.On("ListDir", mock.Anything, "This PC", "/").Return([]models.FileItem{
		{Name: "Root (/)", Path: "/", IsDir: true},
	}, nil).Once()

	out, _, err := ta.run("ls", "This PC", "--json")

	require.NoError(t, err)
	var items []models.FileItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "/", items[0].Path)
}

func TestList_InvalidRemote(t *testing.T) {
	ta := setupTestApp(t)

	_, _, err := ta.run("ls", "gdrive:", "/")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain")
}

func TestCopy_PassesFlags(t *testing.T) {
	ta := setupTestApp(t)
	expected := models.TransferRequest{
		FromRemote: "gdrive",
		ToRemote:   "s3",
		ToPath:     "/backup",
		FromPaths:  []string{"/a.txt", "/b.txt"},
		Options:    models.CopyOptions{Overwrite: true, SkipExisting: true},
	}
	ta.transfers.On("Copy", mock.Anything, expected).Return("job_1700000000", nil).Once()

	out, _, err := ta.run("cp", "gdrive", "s3", "/backup", "/a.txt", "/b.txt", "--overwrite", "--skip-existing")

	require.NoError(t, err)
	assert.Equal(t, "job_1700000000\n", out)
}

func TestCopy_TooFewArgs(t *testing.T) {
	ta := setupTestApp(t)

	_, _, err := ta.run("cp", "gdrive", "s3", "/backup")

	require.Error(t, err)
}

func TestCopy_InvalidDestination(t *testing.T) {
	ta := setupTestApp(t)

	_, _, err := ta.run("cp", "gdrive", "s3:bucket", "/backup", "/a.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "to-remote")
}

func TestMove_JSON(t *testing.T) {
	ta := setupTestApp(t)
	expected := models.TransferRequest{
		FromRemote: "gdrive",
		ToRemote:   "This PC",
		ToPath:     "/home/me",
		FromPaths:  []string{"/a.txt"},
	}
	ta.transfers.On("Move", mock.Anything, expected).Return("job_1700000001", nil).Once()

	out, _, err := ta.run("mv", "gdrive", "This PC", "/home/me", "/a.txt", "--json")

	require.NoError(t, err)
	assert.JSONEq(t, `{"job_id":"job_1700000001"}`, out)
}

func TestRemove(t *testing.T) {
	ta := setupTestApp(t)
	expected := models.DeleteRequest{Remote: "gdrive", Paths: []string{"/a.txt", "/b.txt"}}
	ta.transfers.On("Delete", mock.Anything, expected).Return(nil).Once()

	out, _, err := ta.run("rm", "gdrive", "/a.txt", "/b.txt")

	require.NoError(t, err)
	assert.Equal(t, "deleted 2 item(s)\n", out)
}

func TestRemove_ToolError(t *testing.T) {
	ta := setupTestApp(t)
	expected := models.DeleteRequest{Remote: "gdrive", Paths: []string{"/a.txt"}}
	ta.transfers.On("Delete", mock.Anything, expected).
		Return(models.Errorf(models.KindToolExecutionFailed, "Rclone error: object not found")).Once()

	_, _, err := ta.run("rm", "gdrive", "/a.txt")

	require.Error(t, err)
	assert.Equal(t, "Rclone error: object not found", err.Error())
}

func TestJobs(t *testing.T) {
	ta := setupTestApp(t)

	out, _, err := ta.run("jobs")
	require.NoError(t, err)
	assert.Equal(t, "no jobs\n", out)

	out, _, err = ta.run("jobs", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestRcloneVersion(t *testing.T) {
	version := "1.66.0"
	ta := setupTestApp(t)
	ta.provisioner.On("CheckVersion", mock.Anything).
		Return(models.RcloneInfo{Version: &version, Path: "/data/rclone", Installed: true}).Once()

	out, _, err := ta.run("rclone", "version")

	require.NoError(t, err)
	assert.Equal(t, "rclone 1.66.0 (/data/rclone)\n", out)
}

func TestRcloneVersion_NotInstalled(t *testing.T) {
	ta := setupTestApp(t)
	ta.provisioner.On("CheckVersion", mock.Anything).
		Return(models.RcloneInfo{Path: "/data/rclone"}).Once()

	out, _, err := ta.run("rclone", "version", "--json")

	require.NoError(t, err)
	assert.JSONEq(t, `{"version":null,"path":"/data/rclone","installed":false}`, out)
}

func TestRcloneInstall_RendersProgress(t *testing.T) {
	ta := setupTestApp(t)
	ta.provisioner.On("Install", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sink := args.Get(1).(provision.ProgressSink)
			sink.Notify(models.DownloadProgress{Downloaded: 512, Total: 1024, Percentage: 50})
			sink.Notify(models.DownloadProgress{Downloaded: 1024, Total: 1024, Percentage: 100})
		}).
		Return(provision.InstalledMessage, nil).Once()

	out, stderr, err := ta.run("rclone", "install")

	require.NoError(t, err)
	assert.Equal(t, "Rclone installed successfully\n", out)
	assert.NotEmpty(t, stderr)
}

func TestRcloneUpdate_Error(t *testing.T) {
	ta := setupTestApp(t)
	ta.provisioner.On("Update", mock.Anything, mock.Anything).
		Return("", models.Errorf(models.KindDownloadFailed, "failed to download rclone: HTTP 404 Not Found")).Once()

	out, stderr, err := ta.run("rclone", "update")

	require.Error(t, err)
	assert.Equal(t, "failed to download rclone: HTTP 404 Not Found", err.Error())
	assert.Empty(t, out)
	assert.Empty(t, stderr)
}

func TestVersionCommand(t *testing.T) {
	ta := setupTestApp(t)

	out, _, err := ta.run("version", "--short")

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ta := setupTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- ta.app.serve(ctx, "127.0.0.1", 0, time.Second)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGlobalFlags_ConfigPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	flags := GlobalFlags{ConfigFile: "/etc/rcloneexplorer.yaml"}
	assert.Equal(t, "/etc/rcloneexplorer.yaml", flags.configPath())

	t.Setenv(ConfigEnvVar, "/srv/config.yaml")
	assert.Equal(t, "/srv/config.yaml", (&GlobalFlags{}).configPath())

	t.Setenv(ConfigEnvVar, "")
	assert.Equal(t, "", (&GlobalFlags{}).configPath())
}
