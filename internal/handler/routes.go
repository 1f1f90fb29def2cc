package handler

import (
	"net/http"

	"github.com/msomdec/edutrack/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, classes *service.ClassService, assignments *service.AssignmentService) {
	authHandler := NewAuthHandler(auth)
	classHandler := NewClassHandler(classes)
	assignmentHandler := NewAssignmentHandler(assignments)
	dashboardHandler := NewDashboardHandler(classes, assignments)
	settingsHandler := NewSettingsHandler(auth, classes, assignments)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.HandleFunc("GET /api/auth/me", authHandler.HandleMe)

	mux.HandleFunc("GET /api/classes", classHandler.HandleList)
	mux.HandleFunc("POST /api/classes", classHandler.HandleCreate)
	mux.HandleFunc("PATCH /api/classes/{id}", classHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/classes/{id}", classHandler.HandleDelete)
	mux.HandleFunc("DELETE /api/classes", classHandler.HandleClear)
	mux.HandleFunc("GET /api/schedule/{day}", classHandler.HandleDay)

	mux.HandleFunc("GET /api/assignments", assignmentHandler.HandleList)
	mux.HandleFunc("POST /api/assignments", assignmentHandler.HandleCreate)
	mux.HandleFunc("PATCH /api/assignments/{id}", assignmentHandler.HandleUpdate)
	mux.HandleFunc("PUT /api/assignments/{id}/completed", assignmentHandler.HandleSetCompleted)
	mux.HandleFunc("DELETE /api/assignments/{id}", assignmentHandler.HandleDelete)
	mux.HandleFunc("DELETE /api/assignments", assignmentHandler.HandleClear)

	mux.HandleFunc("GET /api/dashboard", dashboardHandler.HandleDashboard)

	mux.HandleFunc("GET /api/settings/theme", settingsHandler.HandleGetTheme)
	mux.HandleFunc("PUT /api/settings/theme", settingsHandler.HandleSetTheme)
	mux.HandleFunc("POST /api/settings/clear-data", settingsHandler.HandleClearData)
}
