package main

import (
	"context"
	"flag"
	"log"
	"os"

	"jewelstore/internal/config"
	"jewelstore/internal/db"
	"jewelstore/internal/migrate"
)

func main() {
	reset := flag.Bool("reset", false, "drop everything and re-apply from scratch")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if *reset {
		if err := migrate.Reset(ctx, pool); err != nil {
			logger.Fatalf("reset migrations: %v", err)
		}
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
