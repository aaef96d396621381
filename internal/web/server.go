// Package web hosts the browser-facing marketing site server.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/snipshot/website/internal/web/app"
	module "github.com/snipshot/website/internal/web/module"
	"github.com/snipshot/website/internal/web/modules/landing"
	"github.com/snipshot/website/internal/web/platform/httpx"
	"github.com/snipshot/website/internal/web/static"
	"github.com/snipshot/website/internal/web/transport/httpmux"
)

const readHeaderTimeout = 5 * time.Second

const shutdownTimeout = 5 * time.Second

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
}

// Server hosts the marketing site HTTP server and its lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module group.
func NewHandler() (http.Handler, error) {
	landingModule, err := landing.New()
	if err != nil {
		return nil, fmt.Errorf("build landing module: %w", err)
	}

	pages, err := app.Compose(app.ComposeInput{
		Dependencies: module.Dependencies{},
		Modules:      []module.Module{landingModule},
	})
	if err != nil {
		return nil, fmt.Errorf("compose page modules: %w", err)
	}

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS)
	httpmux.MountRoot(rootMux, pages)

	handler := httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.AccessLog(),
	)
	return otelhttp.NewHandler(handler, "web"), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler()
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
