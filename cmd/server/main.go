package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/harsaa34/Greentiq-Task/internal/config"
	"github.com/harsaa34/Greentiq-Task/internal/db"
	"github.com/harsaa34/Greentiq-Task/internal/server"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedFlag        = flag.Bool("seed", false, "Seed sample data after migrating")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()
	logg := config.GetLogger()

	if *migrateOnlyFlag {
		if _, err := db.ConnectAndMigrate(); err != nil {
			logg.Fatalf("migrate-only failed: %v", err)
		}
		logg.Info("migrations completed; exiting as requested")
		return
	}

	cfg := config.Load()
	conn, err := db.ConnectAndMigrate()
	if err != nil {
		logg.Fatalf("database startup failed: %v", err)
	}
	if *seedFlag {
		db.Seed(conn)
	}
	logg.Infof("starting server env=%s port=%s", cfg.Env, cfg.Port)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(conn)}

	go func() {
		logg.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Errorf("error during shutdown: %v", err)
	}
	logg.Info("server gracefully stopped")
}
