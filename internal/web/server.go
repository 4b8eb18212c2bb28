// Package web serves a small JSON API and page over the application service.
package web

import (
	"context"
	"embed"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"pathswitch/internal/app"
	"pathswitch/internal/errors"
	"pathswitch/internal/logging"
	"pathswitch/internal/model"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// Server exposes an app.Service over HTTP. Requests are serialized because
// the service is not safe for concurrent use.
type Server struct {
	mu  sync.Mutex
	svc *app.Service
	mux *http.ServeMux
	log zerolog.Logger
}

func NewServer(svc *app.Service) *Server {
	s := &Server{
		svc: svc,
		mux: http.NewServeMux(),
		log: logging.GetLogger("web"),
	}

	subFS, _ := fs.Sub(staticFS, "static")
	s.mux.Handle("/", http.FileServer(http.FS(subFS)))

	s.mux.HandleFunc("GET /api/path", s.handlePath)
	s.mux.HandleFunc("GET /api/groups", s.handleGroups)
	s.mux.HandleFunc("POST /api/activate", s.handleActivate)
	s.mux.HandleFunc("GET /api/scan", s.handleScan)
	s.mux.HandleFunc("POST /api/clean", s.handleClean)
	s.mux.HandleFunc("GET /api/history", s.handleHistory)
	s.mux.HandleFunc("GET /api/which", s.handleWhich)
	s.mux.HandleFunc("GET /api/help", s.handleHelp)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("Web server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type pathResponse struct {
	Entries []model.PathEntry `json:"entries"`
	Status  string            `json:"status"`
	Version string            `json:"version"`
}

type groupResponse struct {
	Name     string          `json:"name"`
	Selected bool            `json:"selected"`
	Entries  []app.EntryView `json:"entries"`
}

type activateRequest struct {
	Group string `json:"group"`
	Index *int   `json:"index"`
}

type activateResponse struct {
	Status string   `json:"status"`
	Path   []string `json:"path"`
}

type cleanRequest struct {
	Issues []model.Issue `json:"issues"`
}

type cleanResponse struct {
	Removed int    `json:"removed"`
	Status  string `json:"status"`
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, pathResponse{
		Entries: s.svc.PathEntries(),
		Status:  s.svc.Status(),
		Version: model.Version,
	})
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.svc.SelectedGroup()
	groups := make([]groupResponse, 0)
	for _, name := range s.svc.GroupNames() {
		groups = append(groups, groupResponse{
			Name:     name,
			Selected: name == selected,
			Entries:  s.svc.GroupEntries(name),
		})
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(err, errors.ErrInvalidInput, "invalid request body"))
		return
	}
	if req.Group == "" || req.Index == nil {
		s.writeError(w, errors.New(errors.ErrInvalidInput, "group and index are required"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.svc.Activate(req.Group, *req.Index)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activateResponse{Status: s.svc.Status(), Path: res.Path})
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issues := s.svc.Scan()
	if issues == nil {
		issues = []model.Issue{}
	}
	writeJSON(w, http.StatusOK, issues)
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	var req cleanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(err, errors.ErrInvalidInput, "invalid request body"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.svc.Clean(req.Issues)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cleanResponse{Removed: removed, Status: s.svc.Status()})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.svc.History())
}

func (s *Server) handleWhich(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		s.writeError(w, errors.New(errors.ErrInvalidInput, "query is required"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := s.svc.Which(query)
	if matches == nil {
		matches = []model.WhichMatch{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidInput:
		status = http.StatusBadRequest
	case errors.ErrNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("Request failed")
	}
	writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
