package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/sanitizer"
)

func (h *Handlers) ListDir(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	remote := query.Get("remote")
	path := query.Get("path")
	if path == "" {
		path = "/"
	}

	if err := sanitizer.ValidateRemoteName(remote); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	items, err := h.lister.ListDir(context.WithoutCancel(r.Context()), remote, path)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, items, "")
}

func (h *Handlers) CopyItems(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTransfer(w, r)
	if !ok {
		return
	}

	jobID, err := h.transfers.Copy(context.WithoutCancel(r.Context()), req)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, jobID, "Copy completed")
}

func (h *Handlers) MoveItems(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTransfer(w, r)
	if !ok {
		return
	}

	jobID, err := h.transfers.Move(context.WithoutCancel(r.Context()), req)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, jobID, "Move completed")
}

func (h *Handlers) DeleteItems(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	if err := sanitizer.ValidateRemoteName(req.Remote); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if len(req.Paths) == 0 {
		h.writeError(w, http.StatusBadRequest, "paths is required", nil)
		return
	}

	if err := h.transfers.Delete(context.WithoutCancel(r.Context()), req); err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, nil, "Delete completed")
}

// decodeTransfer reads and validates a copy or move body, writing the
// error response itself when it returns false.
func (h *Handlers) decodeTransfer(w http.ResponseWriter, r *http.Request) (models.TransferRequest, bool) {
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return req, false
	}

	if err := sanitizer.ValidateRemoteName(req.FromRemote); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("from_remote: %v", err), nil)
		return req, false
	}
	if err := sanitizer.ValidateRemoteName(req.ToRemote); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("to_remote: %v", err), nil)
		return req, false
	}
	if len(req.FromPaths) == 0 {
		h.writeError(w, http.StatusBadRequest, "from_paths is required", nil)
		return req, false
	}

	return req, true
}
