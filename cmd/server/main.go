package main

import (
	"LabStore/internal/config"
	"LabStore/internal/handlers"
	"LabStore/internal/mailer"
	"LabStore/internal/middleware"
	"LabStore/internal/repo"
	"LabStore/internal/service"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.SQLitePath)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	if err := repo.Migrate(gormDB); err != nil {
		sugar.Fatalw("failed to migrate database", "error", err)
	}

	inventoryRepo := repo.NewInventoryRepository(gormDB)
	inventoryService := service.NewInventoryService(inventoryRepo, sugar)

	var sender mailer.Sender
	if cfg.EmailEnabled {
		sender = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, sugar)
	} else {
		sender = mailer.NewNop(sugar)
	}

	// фоновая рассылка напоминаний о приближающихся сроках
	reminder := mailer.NewReminder(inventoryService, sender,
		time.Duration(cfg.ReminderIntervalHours)*time.Hour, sugar)
	go reminder.Run(ctx)

	h := handlers.NewHandler(inventoryService, sender, sugar)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"SQLitePath", cfg.SQLitePath,
		"EmailEnabled", cfg.EmailEnabled,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
