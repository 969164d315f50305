package server

import (
	"net/http"
)

// setupRoutes installs the preflight route ahead of the file server so
// OPTIONS never reaches the filesystem.
func (s *Server) setupRoutes() {
	s.router.Use(RequestLogMiddleware(s.log))

	s.router.Methods(http.MethodOptions).HandlerFunc(s.handlePreflight)

	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.cfg.Root)))
}

// handlePreflight answers any OPTIONS request with an empty 200
func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
