package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rcloneexplorer/internal/config"
	"rcloneexplorer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	th := setupTestHandlers(t)

	rec, response := th.do(t, "GET", "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, response.Success)
	assert.Equal(t, "Service is healthy", response.Message)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
	assert.NotNil(t, data["timestamp"])
	assert.NotNil(t, data["uptime"])
	assert.NotEmpty(t, data["version"])
}

func TestGetStatus(t *testing.T) {
	th := setupTestHandlers(t)
	th.provisioner.On("CheckVersion", mockAnyCtx).
		Return(models.RcloneInfo{Path: "/data/rclone", Installed: false}).Once()
	th.lister.On("LocalLabel").Return("This PC").Once()

	rec, response := th.do(t, "GET", "/api/v1/status", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "rcloneexplorer", data["service"])
	assert.Equal(t, "This PC", data["local_label"])
	assert.NotEmpty(t, data["install_dir"])

	tool, ok := data["rclone"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, tool["installed"])
	assert.Equal(t, "/data/rclone", tool["path"])
}

func TestGetStatus_WithoutComponents(t *testing.T) {
	handlers := NewHandlers(nil, nil, nil, nil, &config.Config{})

	req := httptest.NewRequest("GET", "/api/v1/status", nil)
	rec := httptest.NewRecorder()

	handlers.GetStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "rcloneexplorer", data["service"])
	assert.NotContains(t, data, "rclone")
	assert.NotContains(t, data, "local_label")
}

func TestGetStatus_VersionCheckOutlivesCancelledRequest(t *testing.T) {
	th := setupTestHandlers(t)
	th.provisioner.On("CheckVersion", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	})).Return(models.RcloneInfo{Path: "/data/rclone", Installed: true}).Once()
	th.lister.On("LocalLabel").Return("This PC").Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest("GET", "/api/v1/status", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	th.handlers.GetStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	tool, ok := data["rclone"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, tool["installed"])
}
