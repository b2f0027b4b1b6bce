package server

import (
	"context"
	"errors"
	"math"
	"net/http"
	"sync"
	"time"

	"zones/engine"
	"zones/searcher"
	"zones/searcher/agent"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Option func(s *Server)

func WithSearcher(searcher *searcher.Searcher) Option {
	return func(s *Server) {
		if searcher != nil {
			s.searcher = searcher
		}
	}
}

// WithMaxTurns bounds the games streamed by the watch endpoint.
func WithMaxTurns(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxTurns = n
		}
	}
}

// WithSeed seeds the draws of requests that do not carry their own seed.
func WithSeed(seed uint64) Option {
	return func(s *Server) {
		s.random = agent.NewRandom(seed)
	}
}

// Server exposes move generation, move selection and AI-vs-AI games over
// HTTP. Every request works on its own nodes and agents.
type Server struct {
	router   chi.Router
	searcher *searcher.Searcher
	maxTurns int

	mu     sync.Mutex
	random agent.Random
}

func NewServer(options ...Option) *Server {
	s := &Server{ // Default values
		searcher: searcher.NewSearcher(searcher.WithMetrics()),
		maxTurns: engine.MaxTurns,
		random:   agent.NewRandom(uint64(time.Now().UnixNano())),
	}
	for _, option := range options {
		option(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/moves", s.handleMoves)
		r.Post("/findmove", s.handleFindMove)
		r.Post("/status", s.handleStatus)
		r.Post("/evaluate", s.handleEvaluate)
		r.Get("/watch", s.handleWatch)
	})
	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return server.Close()
	}
	return nil
}

// nextSeed draws a seed for a request without its own.
func (s *Server) nextSeed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint64(s.random.Intn(math.MaxInt))
}
