package server

import (
	"context"
	"net/http"

	"github.com/galvamailru/chandra/config"
	"github.com/galvamailru/chandra/pkg/otel"
	"github.com/galvamailru/chandra/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	h.Attach(r)

	var handler http.Handler = r

	if otel.EnableTelemetry {
		handler = otelhttp.NewHandler(handler, "server")
	}

	return &Server{
		Config: cfg,

		handler: handler,
	}, nil
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.Address,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
