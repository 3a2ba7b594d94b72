// Package devserver serves the rendered landing page for local preview and
// reloads connected browsers when the content file changes.
package devserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/recera/codebuilder/app/routes"
	"github.com/recera/codebuilder/internal/content"
	"github.com/recera/codebuilder/internal/editor"
	"github.com/recera/codebuilder/pkg/renderer/html"
)

// ReloadPath is the websocket endpoint browsers listen on
const ReloadPath = "/__reload"

// Options configure the preview server
type Options struct {
	Host string
	Port int
	// ContentPath is the YAML content file; empty serves the embedded defaults
	ContentPath string
	Logger      *zap.Logger
}

// Server renders the page on every request from the current content
type Server struct {
	opts     Options
	logger   *zap.Logger
	hub      *hub
	upgrader websocket.Upgrader

	mu   sync.RWMutex
	site *content.Site
}

// New loads the content and prepares the server
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	site, err := content.Load(opts.ContentPath)
	if err != nil {
		return nil, err
	}

	return &Server{
		opts:   opts,
		logger: opts.Logger,
		hub:    newHub(opts.Logger),
		site:   site,
		upgrader: websocket.Upgrader{
			// Local preview only
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Site returns the content currently served
func (s *Server) Site() *content.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Reload re-reads the content file. On failure the previous content stays
// in place and clients are not notified.
func (s *Server) Reload() error {
	site, err := content.Load(s.opts.ContentPath)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.site = site
	s.mu.Unlock()

	s.hub.broadcast("reload")
	return nil
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	// Editor integrations on other local ports poll /healthz
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Get("/index.html", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Get(ReloadPath, s.handleReload)
	r.Get("/samples/{lang}", s.handleSample)
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Every visitor starts from a fresh editor
	doc, err := routes.Page(s.Site(), editor.New(), routes.DocumentOptions{ReloadPath: ReloadPath})
	if err != nil {
		s.logger.Error("failed to build page", zap.Error(err))
		http.Error(w, "failed to build page", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := html.RenderDocument(&buf, doc); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// handleSample downloads a language's sample the way the page's export
// button would before any edit
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	lang, err := editor.ParseLanguage(chi.URLParam(r, "lang"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	state := editor.New()
	if err := state.SelectLanguage(lang); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	artifact := state.Export()

	w.Header().Set("Content-Type", artifact.MediaType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Content)))
	if _, err := artifact.WriteTo(w); err != nil {
		s.logger.Debug("sample download interrupted", zap.Error(err))
	}
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	s.hub.add(conn)

	// Drain until the browser goes away
	go func() {
		defer s.hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Addr is the listen address built from the options
func (s *Server) Addr() string {
	return net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
}

// Run serves until ctx is cancelled, watching the content file if one is set
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		s.logger.Info("preview server listening", zap.String("url", "http://"+s.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("preview server: %w", err)
		}
	}()

	if s.opts.ContentPath != "" {
		go func() {
			err := watchFile(ctx, s.opts.ContentPath, s.logger, func() {
				if err := s.Reload(); err != nil {
					s.logger.Error("content reload failed, keeping previous content", zap.Error(err))
					return
				}
				s.logger.Info("content reloaded", zap.Int("clients", s.hub.count()))
			})
			if err != nil {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	s.hub.closeAll()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("preview server stopped")
	return runErr
}
