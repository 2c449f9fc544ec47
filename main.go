package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-reservas/config"
	"hotel-reservas/controllers"
	"hotel-reservas/repositories"
	"hotel-reservas/routes"
	"hotel-reservas/services"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg := config.Load()
	if err := config.InitLogger(cfg.LogDir, cfg.LogLevel); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer config.Logger.Sync() //nolint:errcheck

	if envErr != nil {
		config.Logger.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	var repo repositories.Repository
	switch cfg.DBDriver {
	case config.DriverMemory:
		config.Logger.Warn("using in-memory repository; data is lost on restart")
		repo = repositories.NewMemoryRepository()
	case config.DriverMySQL:
		if err := config.ConnectDatabase(); err != nil {
			config.Logger.Fatal("database connect failed", zap.Error(err))
		}
		repo = repositories.NewGormRepository(config.DB)
	default:
		config.Logger.Fatal("unknown DB_DRIVER", zap.String("driver", cfg.DBDriver))
	}

	// Initialize services
	roomService := services.NewRoomService(repo)
	customerService := services.NewCustomerService(repo)
	reservationService := services.NewReservationService(repo, cfg.ReservationEditOccupiesRoom)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	customerController := controllers.NewCustomerController(customerService)
	reservationController := controllers.NewReservationController(reservationService)

	router := routes.SetupRouter(roomController, customerController, reservationController, cfg.CORSOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		config.Logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal("ListenAndServe failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	config.Logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	config.Logger.Info("server stopped gracefully")
}
