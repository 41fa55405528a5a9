package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"rcloneexplorer/internal/config"
	"rcloneexplorer/internal/interfaces"
	"rcloneexplorer/internal/models"

	"github.com/gorilla/mux"
)

type Handlers struct {
	catalog     interfaces.RemoteCatalog
	lister      interfaces.DirectoryLister
	transfers   interfaces.TransferExecutor
	provisioner interfaces.ToolProvisioner
	config      *config.Config
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func NewHandlers(
	catalog interfaces.RemoteCatalog,
	lister interfaces.DirectoryLister,
	transfers interfaces.TransferExecutor,
	provisioner interfaces.ToolProvisioner,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		catalog:     catalog,
		lister:      lister,
		transfers:   transfers,
		provisioner: provisioner,
		config:      cfg,
	}
}

func (h *Handlers) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()

	// Remote endpoints
	api.HandleFunc("/remotes", h.ListRemotes).Methods("GET")
	api.HandleFunc("/config/remotes", h.ListRemotes).Methods("GET")
	api.HandleFunc("/config/remotes", h.CreateRemote).Methods("POST")
	api.HandleFunc("/config/remotes/{name}/reconnect", h.ReconnectRemote).Methods("POST")
	api.HandleFunc("/config/remotes/{name}", h.DeleteRemote).Methods("DELETE")

	// File endpoints
	api.HandleFunc("/files", h.ListDir).Methods("GET")
	api.HandleFunc("/files/copy", h.CopyItems).Methods("POST")
	api.HandleFunc("/files/move", h.MoveItems).Methods("POST")
	api.HandleFunc("/files/delete", h.DeleteItems).Methods("POST")

	// Job endpoints
	api.HandleFunc("/jobs", h.GetJobs).Methods("GET")
	api.HandleFunc("/jobs/{id}", h.GetJob).Methods("GET")

	// Tool endpoints
	api.HandleFunc("/rclone/version", h.CheckRcloneVersion).Methods("GET")
	api.HandleFunc("/rclone/install", h.InstallRclone).Methods("POST")
	api.HandleFunc("/rclone/update", h.UpdateRclone).Methods("POST")

	// System endpoints
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")
	api.HandleFunc("/status", h.GetStatus).Methods("GET")

	// Preflight requests only need to reach the CORS middleware
	api.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	api.Use(corsMiddleware)
	api.Use(loggingMiddleware)
	api.Use(jsonContentTypeMiddleware)
}

func (h *Handlers) writeSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, statusCode int, message string, err error) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: false,
		Error:   message,
	}

	if err != nil {
		slog.Error("API error", "message", message, "error", err)
	} else {
		slog.Warn("API error", "message", message)
	}

	if jsonErr := json.NewEncoder(w).Encode(response); jsonErr != nil {
		slog.Error("failed to encode error response", "error", jsonErr)
	}
}

// writeOperationError reports a failed operation with its error text
// verbatim and a status derived from the error kind.
func (h *Handlers) writeOperationError(w http.ResponseWriter, err error) {
	h.writeError(w, statusFor(err), err.Error(), err)
}

func statusFor(err error) int {
	switch models.KindOf(err) {
	case models.KindToolNotFound:
		return http.StatusServiceUnavailable
	case models.KindFilesystem:
		if errors.Is(err, fs.ErrNotExist) {
			return http.StatusNotFound
		}
		return http.StatusInternalServerError
	case models.KindDownloadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
