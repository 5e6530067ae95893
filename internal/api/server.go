// Package api serves the launch catalogue over HTTP.
//
// Every request builds its own filter state from the query string and
// computes against the shared, read-only store, so handlers need no locking.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deidaraiorek/launchboard/internal/filter"
	"github.com/deidaraiorek/launchboard/internal/query"
	"github.com/deidaraiorek/launchboard/internal/store"
	"github.com/deidaraiorek/launchboard/internal/view"
)

type Config struct {
	Addr           string
	RequestTimeout time.Duration
}

type Server struct {
	store  *store.Store
	config Config

	registry      *prometheus.Registry
	queriesTotal  *prometheus.CounterVec
	resultsPerReq prometheus.Histogram
}

// LaunchesResponse is the body of GET /api/v1/launches.
type LaunchesResponse struct {
	Status   string      `json:"status"`
	Count    int         `json:"count"`
	Launches []view.Card `json:"launches"`
}

func NewServer(s *store.Store, cfg Config) *Server {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	srv := &Server{
		store:    s,
		config:   cfg,
		registry: prometheus.NewRegistry(),
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "launchboard_queries_total",
			Help: "Launch list queries served, by outcome filter.",
		}, []string{"outcome"}),
		resultsPerReq: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "launchboard_query_results",
			Help:    "Number of launches returned per list query.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
	}
	srv.registry.MustRegister(srv.queriesTotal, srv.resultsPerReq)
	return srv
}

const shutdownTimeout = 10 * time.Second

// Run serves on the configured address until ctx is cancelled, then drains
// in-flight requests. It returns early if the listener cannot be started.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Launch API listening on %s", s.config.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("launch API stopped: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down launch API...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down launch API: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("Launch API stopped")
	return nil
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.config.RequestTimeout))
	r.Use(corsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/launches", s.handleListLaunches)
		r.Get("/launches/{id}", s.handleGetLaunch)
		r.Get("/rockets/{id}", s.handleGetRocket)
		r.Get("/launchpads/{id}", s.handleGetLaunchpad)
		r.Get("/regions", s.handleRegions)
	})

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListLaunches handles GET /api/v1/launches?outcome=&location=&q=
func (s *Server) handleListLaunches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	outcome, err := filter.ParseOutcome(q.Get("outcome"))
	if err != nil {
		if errors.Is(err, filter.ErrUnknownOutcome) {
			writeError(w, http.StatusBadRequest, "outcome must be one of all, success, failed, upcoming")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state := filter.State{
		Location: q.Get("location"),
		Outcome:  outcome,
		Keyword:  q.Get("q"),
	}

	launches := query.Compute(s.store, state)

	s.queriesTotal.WithLabelValues(string(outcome)).Inc()
	s.resultsPerReq.Observe(float64(len(launches)))

	writeJSON(w, http.StatusOK, LaunchesResponse{
		Status:   query.Summary(len(launches)),
		Count:    len(launches),
		Launches: view.NewCards(launches, s.store),
	})
}

func (s *Server) handleGetLaunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, l := range s.store.Launches() {
		if l.ID == id {
			writeJSON(w, http.StatusOK, view.NewCard(l, s.store))
			return
		}
	}
	writeError(w, http.StatusNotFound, "launch not found")
}

func (s *Server) handleGetRocket(w http.ResponseWriter, r *http.Request) {
	rocket, ok := s.store.Rocket(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "rocket not found")
		return
	}
	writeJSON(w, http.StatusOK, rocket)
}

func (s *Server) handleGetLaunchpad(w http.ResponseWriter, r *http.Request) {
	lp, ok := s.store.Launchpad(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "launchpad not found")
		return
	}
	writeJSON(w, http.StatusOK, lp)
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Regions())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
