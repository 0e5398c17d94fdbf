package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"route-optimization-service/internal/adapters/events"
	"route-optimization-service/internal/adapters/repositories"
	"route-optimization-service/internal/api"
	"route-optimization-service/internal/config"
	"route-optimization-service/internal/platform/db"
	"route-optimization-service/internal/ports"
	"route-optimization-service/internal/services"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or memory, Redis or log) behind ports,
// probes the exact solver once, and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runs, conn, err := openRunRepository(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if conn != nil {
		defer conn.Close()
	}

	publisher, closePublisher, err := openPublisher(cfg.RedisURL)
	if err != nil {
		log.Fatal(err)
	}
	defer closePublisher()

	// The probe runs once; its answer holds for the life of the process.
	exact := services.ProbeExactSolver(cfg.Solver.Exact.Mode, services.ExactOptions{
		MaxStops:         cfg.Solver.Exact.MaxStops,
		Timeout:          cfg.Solver.Exact.Timeout,
		HeldKarpMaxStops: cfg.Solver.Exact.HeldKarpMaxStops,
	})
	engine := services.NewEngine(exact, services.NewHeuristicSolver(0))

	router := api.NewRouter(api.Deps{
		Optimizer:       engine,
		Runs:            runs,
		Events:          publisher,
		MaxVehicles:     cfg.Limits.MaxVehicles,
		MaxStops:        cfg.Limits.MaxStops,
		RateRPS:         cfg.HTTP.RateRPS,
		RateBurst:       cfg.HTTP.RateBurst,
		CORSAllowOrigin: cfg.HTTP.CORSAllowOrigin,
	})

	log.Printf("Server listening addr=:%s exact_solver=%t", cfg.Port, engine.ExactAvailable())
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}

// openRunRepository picks Postgres when a URL is configured and memory otherwise.
func openRunRepository(ctx context.Context, databaseURL string) (ports.RunRepository, *sql.DB, error) {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, keeping run history in memory")
		return repositories.NewMemoryRunRepository(), nil, nil
	}

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return repositories.NewPostgresRunRepository(conn), conn, nil
}

func openPublisher(redisURL string) (ports.EventPublisher, func(), error) {
	if redisURL == "" {
		log.Println("REDIS_URL not set, logging optimization events")
		return events.LogPublisher{}, func() {}, nil
	}

	pub, err := events.NewRedisPublisher(redisURL)
	if err != nil {
		return nil, nil, err
	}
	return pub, func() { _ = pub.Close() }, nil
}
