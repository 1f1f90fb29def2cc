package handler

import "net/http"

// SecurityHeaders sets conservative browser security headers on every
// response. The planner serves a local single user, but the headers cost
// nothing and keep embedding webviews honest.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
