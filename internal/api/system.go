package api

import (
	"context"
	"net/http"
	"time"

	"rcloneexplorer/internal/version"
)

var startTime = time.Now()

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
		"version":   version.String(),
	}

	h.writeSuccess(w, http.StatusOK, health, "Service is healthy")
}

func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"service":   "rcloneexplorer",
		"version":   version.String(),
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
	}

	if h.provisioner != nil {
		// The version check finishes even if the client goes away.
		status["rclone"] = h.provisioner.CheckVersion(context.WithoutCancel(r.Context()))
	}
	if h.config != nil {
		status["install_dir"] = h.config.GetRClone().InstallDir
	}
	if h.lister != nil {
		status["local_label"] = h.lister.LocalLabel()
	}

	h.writeSuccess(w, http.StatusOK, status, "")
}
