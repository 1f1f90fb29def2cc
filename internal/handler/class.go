package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/edutrack/internal/domain"
	"github.com/msomdec/edutrack/internal/service"
)

// ClassHandler handles weekly schedule HTTP requests.
type ClassHandler struct {
	classes *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// HandleList returns the active user's classes.
// GET /api/classes
// Response: {"classes": [...]}
func (h *ClassHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classes.List(r.Context())
	if err != nil {
		slog.Error("list classes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"classes": toClassDTOs(classes)})
}

// HandleCreate adds a class to the active user's schedule.
// POST /api/classes
// Request:  {"day":"Monday","startTime":"09:00","endTime":"10:00","subject":"...","teacher":"...","room":"..."}
// Response: {"class": {...}}
func (h *ClassHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day       string `json:"day"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		Subject   string `json:"subject"`
		Teacher   string `json:"teacher"`
		Room      string `json:"room"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	stored, err := h.classes.Add(r.Context(), domain.ClassEntry{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Subject:   req.Subject,
		Teacher:   req.Teacher,
		Room:      req.Room,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create class", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"class": toClassDTO(stored)})
}

// HandleUpdate patches the matching class. Unknown ids are a no-op.
// PATCH /api/classes/{id}
// Request:  any subset of the create fields
// Response: 204 No Content
func (h *ClassHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.ClassPatch
	if err := readJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.classes.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("update class", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes the matching class. Idempotent.
// DELETE /api/classes/{id}
// Response: 204 No Content
func (h *ClassHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.classes.Delete(r.Context(), r.PathValue("id")); err != nil {
		slog.Error("delete class", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClear removes the active user's entire schedule. The confirmation
// prompt belongs to the client.
// DELETE /api/classes
// Response: 204 No Content
func (h *ClassHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if err := h.classes.DeleteAll(r.Context()); err != nil {
		slog.Error("clear classes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDay returns the classes scheduled for one weekday.
// GET /api/schedule/{day}
// Response: {"classes": [...]}
func (h *ClassHandler) HandleDay(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classes.ForDay(r.Context(), r.PathValue("day"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("classes for day", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"classes": toClassDTOs(classes)})
}
