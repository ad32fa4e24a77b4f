package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/Arty-Facts/profilecard/internal/card"
	"github.com/Arty-Facts/profilecard/internal/render"
)

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int) {
	templ.Handler(render.ErrorPage(status), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderLayout(w, r, s.layout)
}

func (s *Server) HandleLayout(w http.ResponseWriter, r *http.Request) {
	s.renderLayout(w, r, chi.URLParam(r, "name"))
}

func (s *Server) HandleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, FormatBuildVersion(s.version))
}

func (s *Server) renderLayout(w http.ResponseWriter, r *http.Request, name string) {
	layout, err := card.LayoutByName(name)
	if err != nil {
		if errors.Is(err, card.ErrUnknownLayout) {
			s.renderError(w, r, http.StatusNotFound)
			return
		}
		slog.Error("Failed to resolve layout", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}

	body, ok := s.pages.GetPage(layout.Name())
	if !ok {
		profile, err := s.source.GetProfile(r.Context())
		if err != nil {
			slog.Error("Failed to load profile", "error", err)
			s.renderError(w, r, http.StatusInternalServerError)
			return
		}

		body, err = render.Bytes(r.Context(), render.Page(profile, layout, s.opts))
		if err != nil {
			slog.Error("Failed to render page", "layout", layout.Name(), "error", err)
			s.renderError(w, r, http.StatusInternalServerError)
			return
		}
		s.pages.SetPage(layout.Name(), body)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write page", "error", err)
	}
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
