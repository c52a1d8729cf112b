package main

import (
	"context"
	"database/sql"
	"flight-price-service/internal/adapters/cache"
	"flight-price-service/internal/adapters/model"
	"flight-price-service/internal/adapters/repositories"
	"flight-price-service/internal/api"
	"flight-price-service/internal/config"
	"flight-price-service/internal/domain"
	"flight-price-service/internal/platform/db"
	"flight-price-service/internal/ports"
	"flight-price-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It loads the model, wires optional adapters (SQL store, Redis cache) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", ""))
	if err != nil {
		log.Fatal(err)
	}

	// The model is loaded once and shared read-only by every request.
	priceModel, err := model.Load(cfg.ModelPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Model loaded name=%s path=%s features=%d", priceModel.Name(), cfg.ModelPath, priceModel.NFeatures())
	if priceModel.NFeatures() != domain.FeatureCount {
		log.Fatalf("model expects %d features, encoder produces %d", priceModel.NFeatures(), domain.FeatureCount)
	}

	predictor := &services.PricePredictor{
		Model: priceModel,
		Table: domain.DefaultMinTravelTimes,
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()
	predictor.Store = store

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			// The cache is an optimisation; run without it.
			log.Printf("redis unavailable addr=%s err=%v (cache disabled)", cfg.RedisAddr, err)
		} else {
			predictor.Cache = cache.NewRedisPredictionCache(client, priceModel.Name(), cfg.CacheTTL)
		}
	}

	router := api.NewRouter(predictor, cfg.HistoryLimit)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening addr=:%s store=%s cache=%t", cfg.Port, cfg.StoreDriver, predictor.Cache != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// openStore returns the configured prediction log, or nil when disabled.
func openStore(cfg config.Config) (ports.PredictionStore, func(), error) {
	noop := func() {}

	var (
		conn    *sql.DB
		dialect string
		err     error
	)
	switch cfg.StoreDriver {
	case config.StoreNone:
		return nil, noop, nil
	case config.StoreSQLite:
		dialect = repositories.DialectSQLite
		conn, err = db.Open("sqlite", cfg.DBPath)
	case config.StorePostgres:
		dialect = repositories.DialectPostgres
		conn, err = db.Open("pgx", cfg.DatabaseURL)
	default:
		return nil, noop, fmt.Errorf("open store: unsupported driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, noop, fmt.Errorf("open store: %w", err)
	}

	if err := repositories.InitSchema(conn, dialect); err != nil {
		conn.Close()
		return nil, noop, fmt.Errorf("open store: %w", err)
	}

	closeFn := func() { conn.Close() }
	if dialect == repositories.DialectSQLite {
		return repositories.NewSqlitePredictionRepository(conn), closeFn, nil
	}
	return repositories.NewSQLPredictionRepository(conn), closeFn, nil
}
