package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/edutrack/internal/service"
)

// SettingsHandler handles theme preferences and the clear-data action.
type SettingsHandler struct {
	auth        *service.AuthService
	classes     *service.ClassService
	assignments *service.AssignmentService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(auth *service.AuthService, classes *service.ClassService, assignments *service.AssignmentService) *SettingsHandler {
	return &SettingsHandler{auth: auth, classes: classes, assignments: assignments}
}

// HandleGetTheme returns the active theme.
// GET /api/settings/theme
// Response: {"dark": false}
func (h *SettingsHandler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	dark, err := h.auth.Theme(r.Context())
	if err != nil {
		slog.Error("get theme", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"dark": dark})
}

// HandleSetTheme stores the theme choice on the active user's record, or on
// the legacy global flag while logged out.
// PUT /api/settings/theme
// Request:  {"dark": true}
// Response: 204 No Content
func (h *SettingsHandler) HandleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dark bool `json:"dark"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.auth.SetDarkPreference(r.Context(), req.Dark); err != nil {
		slog.Error("set theme", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleClearData removes the active user's classes and assignments. The
// confirmation prompt belongs to the client.
// POST /api/settings/clear-data
// Response: 204 No Content
func (h *SettingsHandler) HandleClearData(w http.ResponseWriter, r *http.Request) {
	if err := h.classes.DeleteAll(r.Context()); err != nil {
		slog.Error("clear classes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if err := h.assignments.DeleteAll(r.Context()); err != nil {
		slog.Error("clear assignments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
