package rest

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	log         *logrus.Entry
	app         App
	address     string
	version     string
	corsOrigins []string
	publicKey   *rsa.PublicKey
}

type Option func(*Server)

func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithPublicKey enables bearer token checks on the debug routes.
func WithPublicKey(key *rsa.PublicKey) Option {
	return func(s *Server) {
		s.publicKey = key
	}
}

func New(log *logrus.Logger, app App, address, version string, opts ...Option) *Server {
	s := Server{
		log:         log.WithField("component", "rest"),
		app:         app,
		address:     address,
		version:     version,
		corsOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &s
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get("/version", s.versionHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: !allowsAnyOrigin(s.corsOrigins),
			MaxAge:           300,
		}))
		r.Route("/v1", func(r chi.Router) {
			r.Route("/meetup", func(r chi.Router) {
				r.Get("/", s.getMeetupHandler)
				r.Get("/raw", s.getRawMeetupHandler)
				r.Get("/state", s.getMeetupStateHandler)
				r.Get("/ws", s.meetupWSHandler)
			})
			r.Route("/counter", func(r chi.Router) {
				r.Get("/", s.getCounterHandler)
				r.Post("/click", s.clickCounterHandler)
			})
		})
	})
	s.mountDebug(r)
	return r
}

// Credentials are never allowed together with a wildcard origin, otherwise
// any site could read responses with the user's cookies.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Warnf("err during shutdown: %v", err)
		}
	}()
	s.log.Infof("listening on %s", s.address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
