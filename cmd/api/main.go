package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-assistant/config"
	_ "personal-assistant/docs" // Swagger docs
	"personal-assistant/internal/assistant/repository/sqlite"
	"personal-assistant/internal/httpserver"
	"personal-assistant/internal/model"
	"personal-assistant/internal/nlu"
	"personal-assistant/internal/suggest"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/log"
)

// @title       Personal Assistant API
// @description Rule-based natural language assistant for tasks, budget, and schedule.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Store
	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open sqlite store: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite store ready at %s", cfg.SQLite.Path)

	// 4. NLU core
	dateParser, dtErr := datemath.NewParser(cfg.NLU.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.NLU.Timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}
	processor := nlu.New(logger, dateParser, nil)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			calendarClient.SetDefaultCalendar(cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: model.Environment(cfg.Environment.Name),

		DB:        db,
		Processor: processor,
		SuggestCfg: suggest.Config{
			PendingTaskLimit: cfg.Suggest.PendingTaskLimit,
			ExpenseRatio:     cfg.Suggest.ExpenseRatio,
			MaxSuggestions:   cfg.Suggest.MaxSuggestions,
		},
		Calendar:  calendarClient,
		Dates:     dateParser,
		CacheSize: cfg.NLU.CacheSize,
		Timezone:  cfg.NLU.Timezone,

		RateLimitRPS:   cfg.HTTPServer.RateLimitRPS,
		RateLimitBurst: cfg.HTTPServer.RateLimitBurst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
