package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/menu"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	config.LogInit(os.Getenv("LOG_LEVEL"))
	config.SetupConfig()
	config.LogInit(config.Config.GetString("log_level"))

	store := services.NewFileStore(config.Config.GetString("data_file"))
	registry := services.NewRegistryService()

	records, err := store.LoadAll()
	if err != nil {
		config.Logger.Error().Err(err).Msg("could not load record file, starting with empty registry")
		records = nil
	}
	kept := registry.Restore(records)
	config.Logger.Info().Int("rooms", kept).Str("file", store.Path).Msg("registry loaded")

	if config.Config.GetString("mode") == "menu" {
		m := menu.New(registry, os.Stdin, os.Stdout)
		m.Run()
		saveRegistry(store, registry)
		return
	}

	roomController := controllers.NewRoomController(registry)
	billingController := controllers.NewBillingController(registry)
	router := routes.SetupRouter(roomController, billingController)

	addr := ":" + config.Config.GetString("port")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		config.Logger.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Logger.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	config.Logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.Error().Err(err).Msg("server forced to shutdown")
	}

	saveRegistry(store, registry)
	config.Logger.Info().Msg("server stopped")
}

// saveRegistry mirrors the registry to disk. A failed save is reported but
// never discards the in-memory state.
func saveRegistry(store *services.FileStore, registry *services.RegistryService) {
	if err := store.SaveAll(registry.Snapshot()); err != nil {
		config.Logger.Error().Err(err).Str("file", store.Path).Msg("failed to save records")
		return
	}
	config.Logger.Info().Str("file", store.Path).Msg("records saved")
}
