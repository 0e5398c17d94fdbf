package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"route-optimization-service/internal/adapters/repositories"
	"route-optimization-service/internal/config"
	"route-optimization-service/internal/platform/db"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const usage = `usage: dbtool <command> [flags]

commands:
  init                      create the optimization run history schema
  prune -older-than=720h    delete runs older than the given age`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	switch os.Args[1] {
	case "init":
		log.Println("Initializing database schema...")
		if err := repositories.InitSchema(ctx, conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")

	case "prune":
		fs := flag.NewFlagSet("prune", flag.ExitOnError)
		olderThan := fs.Duration("older-than", 30*24*time.Hour, "delete runs older than this age")
		_ = fs.Parse(os.Args[2:])

		if *olderThan <= 0 {
			log.Fatal("-older-than must be positive")
		}

		cutoff := time.Now().Add(-*olderThan)
		log.Printf("Pruning runs created before %s...", cutoff.UTC().Format(time.RFC3339))
		n, err := repositories.PruneRuns(ctx, conn, cutoff)
		if err != nil {
			log.Fatalf("prune failed: %v", err)
		}
		log.Printf("Pruned %d runs.", n)

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
