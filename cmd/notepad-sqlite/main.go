package main

import (
	"log"
	"os"

	"notepad-sqlite/internal/app"
	"notepad-sqlite/internal/config"
	"notepad-sqlite/internal/logger"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)

	fyneApp := fyneapp.NewWithID(app.AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})

	application, err := app.NewApplication(fyneApp, cfg, appLogger)
	if err != nil {
		app.ShowFatal(fyneApp, err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}
}
