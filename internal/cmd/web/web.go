// Package web runs the marketing site server command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/snipshot/website/internal/platform/config"
	"github.com/snipshot/website/internal/platform/otel"
	"github.com/snipshot/website/internal/web"
)

const defaultHTTPAddr = "localhost:8080"

const serviceName = "snipshot-website"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"SNIPSHOT_WEB_HTTP_ADDR"`
}

// ParseConfig reads environment defaults and parses flag overrides into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{HTTPAddr: defaultHTTPAddr}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(ctx, web.Config{HTTPAddr: cfg.HTTPAddr})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
