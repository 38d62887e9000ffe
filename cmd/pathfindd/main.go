// Command pathfindd serves the strategy comparison API over the
// embedded upstate New York road network: POST /api/route runs one
// search strategy, POST /api/sudoku runs one puzzle solver, GET
// /api/runs lists persisted runs. Configuration is environment-only;
// see internal/config.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/pathfind-labs/pathfind/internal/config"
	"github.com/pathfind-labs/pathfind/metrics"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg := config.Load()

	graph, err := buildDataset()
	if err != nil {
		log.Fatal().Err(err).Msg("dataset build failed")
	}

	store, err := metrics.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("metrics store open failed")
	}
	defer store.Close()

	s := &server{
		graph:     graph,
		collector: metrics.NewCollector(),
		store:     store,
		log:       log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/route", s.handleRoute)
	mux.HandleFunc("/api/sudoku", s.handleSudoku)
	mux.HandleFunc("/api/runs", s.handleRuns)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Int("cities", graph.NodeCount()).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exiting")
}
