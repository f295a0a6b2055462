// Package web serves the numberline as HTML, JSON and SVG. Every request
// carries the complete view state in its query, so handlers are stateless.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/a-h/templ"

	"github.com/autobrr/go-numberline/internal/config"
	"github.com/autobrr/go-numberline/internal/numberline"
)

// NewHandler routes the numberline endpoints.
func NewHandler(defaults config.Defaults) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		frame, ok := renderRequest(w, r, defaults)
		if !ok {
			return
		}
		templ.Handler(page(frame)).ServeHTTP(w, r)
	})
	mux.HandleFunc("GET /frame.json", func(w http.ResponseWriter, r *http.Request) {
		frame, ok := renderRequest(w, r, defaults)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, numberline.RenderJSON(frame))
	})
	mux.HandleFunc("GET /numberline.svg", func(w http.ResponseWriter, r *http.Request) {
		frame, ok := renderRequest(w, r, defaults)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = fmt.Fprint(w, numberline.RenderSVG(frame))
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = fmt.Fprintln(w, "ok")
	})
	return mux
}

func renderRequest(w http.ResponseWriter, r *http.Request, defaults config.Defaults) (numberline.Frame, bool) {
	view, err := viewFromQuery(r.URL.Query(), defaults)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return numberline.Frame{}, false
	}
	return numberline.Render(view), true
}

// Server hosts the numberline handler until its context ends.
type Server struct {
	cfg        config.Server
	listener   net.Listener
	httpServer *http.Server
}

// New binds the listen address so Addr is known before Serve.
func New(cfg config.Server, defaults config.Defaults) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return &Server{
		cfg:      cfg,
		listener: listener,
		httpServer: &http.Server{
			Handler:           NewHandler(defaults),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
	}, nil
}

func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve blocks until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("numberline server listening at %v", s.listener.Addr())
		errCh <- s.httpServer.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("numberline server shutdown: %v", err)
		return fmt.Errorf("shutdown http: %w", err)
	}
	log.Printf("numberline server stopped")
	return nil
}
