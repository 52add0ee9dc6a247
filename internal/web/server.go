// Package web provides the page server: it renders the portfolio page and its
// htmx partials from the backend's data.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/loginstatus"
	"github.com/evcraddock/portfolio/internal/logging"
	"github.com/evcraddock/portfolio/internal/panel"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Backend is everything the page needs from the portfolio backend.
type Backend interface {
	panel.Source
	loginstatus.Source
	Chart(ctx context.Context) (map[string]int64, error)
}

// Options configures a Server.
type Options struct {
	// DefaultLimit is the number of comments shown when the request does
	// not carry a limit.
	DefaultLimit int

	// BackendURL is where the comment and nickname forms post to.
	BackendURL string
}

// Server is the page HTTP server.
type Server struct {
	backend   Backend
	opts      Options
	templates *template.Template
	handler   http.Handler
}

// NewServer creates a page server backed by backend.
func NewServer(backend Backend, opts Options) (*Server, error) {
	funcMap := template.FuncMap{
		"blockStyle":  tmplBlockStyle,
		"markersJSON": tmplMarkersJSON,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		backend:   backend,
		opts:      opts,
		templates: tmpl,
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/comments", s.handleComments)
	mux.HandleFunc("/comments/delete", s.handleDeleteComments)
	mux.HandleFunc("/fact", s.handleFact)
	mux.HandleFunc("/pets", s.handlePets)
	mux.HandleFunc("/pets/random", s.handleRandomPet)

	s.handler = logging.RequestLogger(otelhttp.NewHandler(mux, "pf.page"))
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// Template helper functions

func tmplBlockStyle(st comment.Style) template.CSS {
	return template.CSS(fmt.Sprintf("border: %s; width: %s; margin: 0 auto; text-align: %s;",
		st.Border, st.Width, st.Align))
}

func tmplMarkersJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
