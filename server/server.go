package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/Arty-Facts/profilecard/internal/cache"
	"github.com/Arty-Facts/profilecard/internal/config"
	"github.com/Arty-Facts/profilecard/internal/profile"
	"github.com/Arty-Facts/profilecard/internal/render"
)

type Server struct {
	version   string
	port      string
	layout    string
	rateLimit int
	server    *http.Server
	assets    http.FileSystem
	source    profile.Source
	pages     *cache.Cache
	opts      render.Options
}

func NewServer(version string, cfg config.Config, assets http.FileSystem, source profile.Source) *Server {

	s := &Server{
		version:   version,
		port:      cfg.Port,
		layout:    cfg.Layout,
		rateLimit: cfg.RateLimit,
		assets:    assets,
		source:    source,
		pages:     cache.NewCache(cfg.CacheTTL),
		opts: render.Options{
			StylesheetURL: cfg.StylesheetURL,
			AssetPrefix:   "/static/",
		},
	}

	s.server = &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.Routes(),
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Close() {
	if err := s.server.Close(); err != nil {
		panic(err)
	}
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
