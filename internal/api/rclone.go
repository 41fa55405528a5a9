package api

import (
	"context"
	"net/http"

	"rcloneexplorer/internal/provision"
)

func (h *Handlers) CheckRcloneVersion(w http.ResponseWriter, r *http.Request) {
	info := h.provisioner.CheckVersion(context.WithoutCancel(r.Context()))
	h.writeSuccess(w, http.StatusOK, info, "")
}

func (h *Handlers) InstallRclone(w http.ResponseWriter, r *http.Request) {
	message, err := h.provisioner.Install(context.WithoutCancel(r.Context()), provision.LogSink{})
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, message, message)
}

func (h *Handlers) UpdateRclone(w http.ResponseWriter, r *http.Request) {
	message, err := h.provisioner.Update(context.WithoutCancel(r.Context()), provision.LogSink{})
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, message, message)
}
