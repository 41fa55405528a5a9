package api

import (
	"net/http"

	"rcloneexplorer/internal/models"
)

// GetJobs always reports an empty list. Transfers run synchronously and are
// never recorded.
func (h *Handlers) GetJobs(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, http.StatusOK, []models.Job{}, "")
}

func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusNotFound, "job not found", nil)
}
