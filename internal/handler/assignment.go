package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/msomdec/edutrack/internal/domain"
	"github.com/msomdec/edutrack/internal/service"
)

// AssignmentHandler handles assignment HTTP requests.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// HandleList returns the active user's assignments ordered by due date,
// narrowed by the optional filter query parameter (all, pending, completed).
// GET /api/assignments?filter=pending
// Response: {"assignments": [...]}
func (h *AssignmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := domain.AssignmentFilter(r.URL.Query().Get("filter"))

	assignments, err := h.assignments.Filtered(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("list assignments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"assignments": toAssignmentDTOs(assignments, time.Now()),
	})
}

// HandleCreate adds an assignment to the active user's list.
// POST /api/assignments
// Request:  {"title":"...","subject":"...","dueDate":"2024-06-17","description":"..."}
// Response: {"assignment": {...}}
func (h *AssignmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Subject     string `json:"subject"`
		DueDate     string `json:"dueDate"`
		Description string `json:"description"`
		Completed   bool   `json:"completed"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	stored, err := h.assignments.Add(r.Context(), domain.AssignmentEntry{
		Title:       req.Title,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create assignment", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"assignment": toAssignmentDTO(stored, time.Now()),
	})
}

// HandleUpdate patches the matching assignment. Unknown ids are a no-op.
// PATCH /api/assignments/{id}
// Request:  any subset of the create fields
// Response: 204 No Content
func (h *AssignmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.AssignmentPatch
	if err := readJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.assignments.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("update assignment", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleSetCompleted marks the matching assignment done or not done.
// PUT /api/assignments/{id}/completed
// Request:  {"completed": true}
// Response: 204 No Content
func (h *AssignmentHandler) HandleSetCompleted(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.assignments.SetCompleted(r.Context(), r.PathValue("id"), req.Completed); err != nil {
		slog.Error("set assignment completed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes the matching assignment. Idempotent.
// DELETE /api/assignments/{id}
// Response: 204 No Content
func (h *AssignmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.assignments.Delete(r.Context(), r.PathValue("id")); err != nil {
		slog.Error("delete assignment", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClear removes the active user's entire assignment list. The
// confirmation prompt belongs to the client.
// DELETE /api/assignments
// Response: 204 No Content
func (h *AssignmentHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if err := h.assignments.DeleteAll(r.Context()); err != nil {
		slog.Error("clear assignments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
