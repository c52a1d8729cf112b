package main

import (
	"database/sql"
	"flag"
	"flight-price-service/internal/adapters/repositories"
	"flight-price-service/internal/api/handlers"
	"flight-price-service/internal/config"
	"flight-price-service/internal/platform/db"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/jszwec/csvutil"
	_ "modernc.org/sqlite"
)

func main() {
	exportRoutes := flag.String("export-routes", "", "write the minimum travel-time table as CSV to this path and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if *exportRoutes != "" {
		if err := writeRoutesCSV(*exportRoutes); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote travel-time table to %s", *exportRoutes)
		return
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", ""))
	if err != nil {
		log.Fatal(err)
	}

	var (
		conn    *sql.DB
		dialect string
	)
	switch cfg.StoreDriver {
	case config.StorePostgres:
		dialect = repositories.DialectPostgres
		conn, err = db.Open("pgx", cfg.DatabaseURL)
	case config.StoreSQLite:
		dialect = repositories.DialectSQLite
		conn, err = db.Open("sqlite", cfg.DBPath)
	default:
		log.Fatalf("STORE_DRIVER must be sqlite or postgres, got %q", cfg.StoreDriver)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Printf("Initializing %s schema...", dialect)
	if err := repositories.InitSchema(conn, dialect); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}

func writeRoutesCSV(path string) error {
	b, err := csvutil.Marshal(handlers.RouteTimes(nil))
	if err != nil {
		return fmt.Errorf("export routes: encode csv: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("export routes: write %q: %w", path, err)
	}
	return nil
}
