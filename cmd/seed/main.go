package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/config"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/repository"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: seed workers, 2: seed restaurants with postings, 3: seed applications, 4: seed shifts, 5: all of the above)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, ping to verify the DSN
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if n <= 0 {
		slog.Error("please pass a positive record count")
		return
	}

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		seed.SeedWorkers(repo, cfg, n)
	case 2:
		seed.SeedRestaurants(repo, cfg, n)
	case 3:
		seed.SeedApplications(repo)
	case 4:
		seed.SeedShifts(repo)
	case 5:
		seed.SeedWorkers(repo, cfg, n)
		seed.SeedRestaurants(repo, cfg, n)
		seed.SeedApplications(repo)
		seed.SeedShifts(repo)
	default:
		slog.Error("unknown operation")
	}
}
