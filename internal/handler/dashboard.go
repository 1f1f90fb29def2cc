package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/msomdec/edutrack/internal/service"
)

// DashboardHandler serves the combined dashboard view: today's classes and
// the assignments due soon.
type DashboardHandler struct {
	classes     *service.ClassService
	assignments *service.AssignmentService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(classes *service.ClassService, assignments *service.AssignmentService) *DashboardHandler {
	return &DashboardHandler{classes: classes, assignments: assignments}
}

// HandleDashboard returns today's classes ordered by start time and the
// assignments due within the window (default 7 days, override with ?days=N).
// GET /api/dashboard
// Response: {"todaysClasses": [...], "dueSoon": [...]}
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusUnprocessableEntity, "days must be a positive integer")
			return
		}
		days = parsed
	}

	todays, err := h.classes.Today(r.Context())
	if err != nil {
		slog.Error("today's classes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	dueSoon, err := h.assignments.DueSoon(r.Context(), days)
	if err != nil {
		slog.Error("due soon", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"todaysClasses": toClassDTOs(todays),
		"dueSoon":       toAssignmentDTOs(dueSoon, time.Now()),
	})
}
