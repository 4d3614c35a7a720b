package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/lingtangg/weather-summary/internal/api/http"
	"github.com/lingtangg/weather-summary/internal/config"
	"github.com/lingtangg/weather-summary/internal/loader"
	"github.com/lingtangg/weather-summary/internal/scheduler"
	"github.com/lingtangg/weather-summary/internal/store"
	"github.com/lingtangg/weather-summary/internal/weather"
)

func main() {
	file := flag.String("file", "", "Print the overview and daily summary for this CSV/XLSX file or URL, then exit.")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for remote sources.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	ld := loader.New(httpClient)

	if *file != "" {
		if err := printReport(ld, *file); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		return
	}

	memStore := store.NewMemoryStore(cfg.StoreMaxDatasets)

	// Core service orchestrating the loader and store.
	service := weather.NewService(memStore, ld, loader.ReadCSV)

	// Scheduler that loads configured sources now and reloads them periodically.
	sched := scheduler.New(cfg.Sources, cfg.ReloadInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-summary",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-summary",
		})
	})

	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()
	log.Printf("INFO: listening on :%s", cfg.Port)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// printReport writes the overview, a blank line and the daily summary to stdout.
func printReport(ld weather.Loader, source string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ds, err := ld.Load(ctx, source)
	if err != nil {
		return err
	}
	report, err := weather.Report(ds)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, report)
	return err
}
