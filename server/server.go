package server

import (
	"embed"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/jaliph/chatlens/api"
)

//go:embed templates/index.html
var templateFS embed.FS

// Server represents the HTTP server
type Server struct {
	handler *api.Handler
}

// NewServer creates a new HTTP server around the API handler
func NewServer(handler *api.Handler) *Server {
	return &Server{handler: handler}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/", s.handleDashboard).Methods("GET")
	r.HandleFunc("/api/health", s.handler.HandleHealth).Methods("GET")
	r.HandleFunc("/api/upload", s.handler.HandleUpload).Methods("POST")
	r.HandleFunc("/api/report", s.handler.HandleReport).Methods("GET")
	r.HandleFunc("/api/users", s.handler.HandleGetUsers).Methods("GET")

	return r
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("starting chatlens server")
	return srv.ListenAndServe()
}

// handleDashboard serves the embedded single-page dashboard.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := templateFS.ReadFile("templates/index.html")
	if err != nil {
		api.WriteInternalError(w, "dashboard template missing")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// requestLogger logs method, path and elapsed time per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
