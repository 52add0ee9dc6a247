package web

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/evcraddock/portfolio/internal/chart"
	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/fact"
	"github.com/evcraddock/portfolio/internal/gallery"
	"github.com/evcraddock/portfolio/internal/loginstatus"
	"github.com/evcraddock/portfolio/internal/metrics"
	"github.com/evcraddock/portfolio/internal/panel"
	"github.com/evcraddock/portfolio/internal/places"
)

type commentsData struct {
	Comments      []comment.Block
	DeleteEnabled bool
	// OOB marks the delete button for an htmx out-of-band swap.
	OOB bool
}

type barData struct {
	Label   string
	Count   int64
	Percent int
}

type optionData struct {
	Index int
	Label string
}

type imageData struct {
	URL     string
	MaxSize int
}

type pageData struct {
	Fact         string
	Limit        int
	Panel        commentsData
	Login        *loginstatus.Status
	NicknameForm template.HTML
	BackendURL   string
	Likes        []barData
	Activities   []barData
	Names        []optionData
	Actions      []optionData
	MapCenter    places.Marker
	MapZoom      int
	Markers      []places.Marker
}

// handleIndex renders the whole page. Sections are loaded concurrently;
// a section whose backend call fails is rendered empty.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	limit, err := s.parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := pageData{
		Fact:       fact.Random(nil),
		Limit:      limit,
		BackendURL: s.opts.BackendURL,
		Activities: bars(chart.Activities()),
		Names:      options(gallery.Names),
		Actions:    options(gallery.Actions),
		MapCenter:  places.Center,
		MapZoom:    places.DefaultZoom,
		Markers:    places.Markers(),
	}

	view := &panel.List{}
	p := panel.New(s.backend, view, nil)

	var g errgroup.Group
	g.Go(func() error {
		if err := p.Refresh(r.Context(), limit); err != nil {
			sectionFailed("comments", err)
		}
		return nil
	})
	g.Go(func() error {
		st, err := loginstatus.Fetch(r.Context(), s.backend)
		if err != nil {
			sectionFailed("login", err)
			return nil
		}
		st.LoginURL = s.resolveBackendLink(st.LoginURL)
		st.LogoutURL = s.resolveBackendLink(st.LogoutURL)
		data.Login = st
		// The fragment comes from our own backend.
		data.NicknameForm = template.HTML(st.NicknameForm)
		return nil
	})
	g.Go(func() error {
		likes, err := s.backend.Chart(r.Context())
		if err != nil {
			sectionFailed("chart", err)
			return nil
		}
		data.Likes = bars(chart.Likes(likes))
		return nil
	})
	_ = g.Wait()

	data.Panel = commentsData{Comments: view.Blocks(), DeleteEnabled: view.DeleteEnabled()}
	s.render(w, "index.html", data)
}

// handleComments re-renders the comments list for a new limit. On failure it
// answers with an error status and htmx leaves the current list in place.
func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, err := s.parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := &panel.List{}
	if err := panel.New(s.backend, view, nil).Refresh(r.Context(), limit); err != nil {
		http.Error(w, "Could not load comments", http.StatusBadGateway)
		return
	}

	s.renderPartial(w, "comments-partial", commentsData{
		Comments:      view.Blocks(),
		DeleteEnabled: view.DeleteEnabled(),
		OOB:           true,
	})
}

// handleDeleteComments deletes every comment and, once the backend has
// answered, reloads the page (HX-Refresh for htmx, a redirect otherwise).
func (s *Server) handleDeleteComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reload := panel.ReloaderFunc(func(ctx context.Context) error {
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Refresh", "true")
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	})

	if err := panel.New(s.backend, &panel.List{}, reload).DeleteAll(r.Context()); err != nil {
		http.Error(w, "Could not delete comments", http.StatusBadGateway)
	}
}

// handleFact renders a new random fact.
func (s *Server) handleFact(w http.ResponseWriter, r *http.Request) {
	s.renderPartial(w, "fact-partial", fact.Random(nil))
}

// handlePets renders the picture for the selected pet and action. A
// placeholder selection clears the image container.
func (s *Server) handlePets(w http.ResponseWriter, r *http.Request) {
	nameIdx, _ := strconv.Atoi(r.URL.Query().Get("names"))
	actionIdx, _ := strconv.Atoi(r.URL.Query().Get("actions"))

	url, ok := gallery.Pick(nameIdx, actionIdx)
	if !ok {
		s.renderPartial(w, "image-partial", nil)
		return
	}
	s.renderPartial(w, "image-partial", imageData{URL: s.backendPath(url), MaxSize: gallery.MaxSize})
}

// handleRandomPet renders a random picture of both pets.
func (s *Server) handleRandomPet(w http.ResponseWriter, r *http.Request) {
	s.renderPartial(w, "image-partial", imageData{URL: s.backendPath(gallery.Random(nil)), MaxSize: gallery.MaxSize})
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}

// renderPartial executes a named template block (no layout).
func (s *Server) renderPartial(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering partial: %v", err), http.StatusInternalServerError)
	}
}

// parseLimit reads the limit query parameter, falling back to the default.
func (s *Server) parseLimit(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return s.opts.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("limit must be a non-negative number")
	}
	return limit, nil
}

// backendPath resolves a backend-relative path such as a gallery image.
func (s *Server) backendPath(p string) string {
	return strings.TrimSuffix(s.opts.BackendURL, "/") + "/" + p
}

// resolveBackendLink points a root-relative link from a backend fragment at
// the backend.
func (s *Server) resolveBackendLink(link string) string {
	if !strings.HasPrefix(link, "/") || s.opts.BackendURL == "" {
		return link
	}
	return s.backendPath(strings.TrimPrefix(link, "/"))
}

func sectionFailed(section string, err error) {
	metrics.PageSectionFailures.WithLabelValues(section).Inc()
	slog.Warn("page section unavailable", "section", section, "err", err)
}

func bars(rows []chart.Row) []barData {
	pct := chart.Percent(rows)
	out := make([]barData, len(rows))
	for i, r := range rows {
		out[i] = barData{Label: r.Label, Count: r.Count, Percent: pct[i]}
	}
	return out
}

func options(m map[int]string) []optionData {
	out := make([]optionData, 0, len(m))
	for i := 1; i <= len(m); i++ {
		out = append(out, optionData{Index: i, Label: m[i]})
	}
	return out
}
