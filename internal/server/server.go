package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/scons/sconsweb/internal/config"
	"github.com/scons/sconsweb/internal/content"
	"github.com/scons/sconsweb/internal/livereload"
	"github.com/scons/sconsweb/internal/logging"
)

// LiveReloadPath is where browsers connect for reload notices.
const LiveReloadPath = "/livereload"

// Server serves the site's pages over HTTP.
type Server struct {
	logger *zap.Logger
	hub    *livereload.Hub

	mu         sync.RWMutex
	cfg        *config.Config
	renderer   *content.Renderer
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for cfg. A non-nil hub enables the live reload
// endpoint and script.
func New(cfg *config.Config, logger *zap.Logger, hub *livereload.Hub) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{logger: logger, hub: hub}
	renderer, err := s.newRenderer(cfg)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	s.renderer = renderer
	s.router = s.buildRouter(cfg)
	return s, nil
}

func (s *Server) newRenderer(cfg *config.Config) (*content.Renderer, error) {
	opts := content.Options{LinkStyle: config.LinkClean}
	if s.hub != nil {
		opts.LiveReload = LiveReloadPath
	}
	return content.NewRenderer(cfg, opts)
}

// buildRouter creates and configures the chi router with all routes. The
// server settings of cfg (origins, request timeout) are fixed per router.
func (s *Server) buildRouter(cfg *config.Config) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	// CORS and HEAD handling run before routing so that preflight and HEAD
	// requests reach them.
	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// The websocket must not be compressed or timed out.
	if s.hub != nil {
		r.Get(LiveReloadPath, s.hub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))
		if cfg.Server.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
		}

		// Health check
		r.Get("/healthz", s.handleHealth)

		r.Get("/css/scons.css", s.handleStylesheet)
		r.Get("/doc/*", s.handleDoc)
		r.Get("/", s.handlePage)
		r.Get("/{slug}", s.handlePage)
		r.NotFound(s.handleNotFound)
	})

	return r
}

// Router returns the chi router currently in effect.
func (s *Server) Router() chi.Router {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.router
}

// ServeHTTP dispatches to the current router, so a Reload applies to
// requests already being accepted by the listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router().ServeHTTP(w, r)
}

// Config returns the configuration currently in effect.
func (s *Server) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Reload swaps in a renderer and router built from cfg and tells connected
// browsers to refresh. On error the previous configuration stays in effect.
// server.port and the listener timeouts still need a restart.
func (s *Server) Reload(cfg *config.Config) error {
	renderer, err := s.newRenderer(cfg)
	if err != nil {
		return fmt.Errorf("reloading: %w", err)
	}
	router := s.buildRouter(cfg)
	s.mu.Lock()
	s.cfg = cfg
	s.renderer = renderer
	s.router = router
	s.mu.Unlock()

	if s.hub != nil {
		n := s.hub.Broadcast("config changed")
		s.logger.Info("configuration reloaded", zap.Int("browsers", n))
	}
	return nil
}

// current returns the renderer for one request. In dev mode the renderer is
// rebuilt so that edits under content.dir show up on refresh.
func (s *Server) current() (*content.Renderer, *config.Config, error) {
	s.mu.RLock()
	cfg, renderer := s.cfg, s.renderer
	s.mu.RUnlock()

	if cfg.Server.Dev {
		fresh, err := s.newRenderer(cfg)
		if err != nil {
			return nil, nil, err
		}
		return fresh, cfg, nil
	}
	return renderer, cfg, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cfg := s.Config()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"release": cfg.Release.Current,
	})
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	renderer, _, err := s.current()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(renderer.Stylesheet())
}

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	root := s.Config().Docs.Root
	if root == "" {
		s.handleNotFound(w, r)
		return
	}
	http.FileServer(http.Dir(root)).ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if strings.HasSuffix(slug, ".php") {
		p, err := content.LookupLegacy(slug)
		if err != nil {
			s.handleNotFound(w, r)
			return
		}
		target := "/" + p.Slug
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	p, err := content.Lookup(slug)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}
	s.renderPage(w, r, p, http.StatusOK)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, content.NotFound, http.StatusNotFound)
}

// renderPage renders into a buffer so that a failed render can still
// answer 500.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, p content.Page, status int) {
	renderer, _, err := s.current()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := renderer.Render(&buf, p); err != nil {
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("rendering failed", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	cfg := s.Config()
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("sconsweb server listening", zap.String("addr", addr), zap.String("release", cfg.Release.Current))
	return srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server and disconnects live reload
// clients.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	s.mu.RLock()
	srv := s.httpServer
	s.mu.RUnlock()
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}
