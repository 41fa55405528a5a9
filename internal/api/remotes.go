package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"rcloneexplorer/internal/models"

	"github.com/gorilla/mux"
)

func (h *Handlers) ListRemotes(w http.ResponseWriter, r *http.Request) {
	remotes, err := h.catalog.ListRemotes(context.WithoutCancel(r.Context()))
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, remotes, "")
}

// CreateRemote accepts a remote definition without acting on it. Remotes
// are managed with `rclone config`.
func (h *Handlers) CreateRemote(w http.ResponseWriter, r *http.Request) {
	var req models.RemoteConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("ignoring unreadable remote config request", "error", err)
	}

	slog.Info("remote create requested, nothing changed", "name", req.Name, "provider", req.Provider)
	h.writeSuccess(w, http.StatusOK, nil, "")
}

func (h *Handlers) ReconnectRemote(w http.ResponseWriter, r *http.Request) {
	slog.Info("remote reconnect requested, nothing changed", "name", mux.Vars(r)["name"])
	h.writeSuccess(w, http.StatusOK, nil, "")
}

func (h *Handlers) DeleteRemote(w http.ResponseWriter, r *http.Request) {
	slog.Info("remote delete requested, nothing changed", "name", mux.Vars(r)["name"])
	h.writeSuccess(w, http.StatusOK, nil, "")
}
