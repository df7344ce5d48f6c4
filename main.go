package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inventoryhub/parts-service/controllers"
	"github.com/inventoryhub/parts-service/logger"
	"github.com/inventoryhub/parts-service/routes"
	"github.com/inventoryhub/parts-service/services"
	"github.com/inventoryhub/parts-service/storage"
)

func main() {
	cfg := LoadConfig()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	store, err := storage.Open(context.Background(), storage.Config{
		MongoURI: cfg.MongoURI,
		MongoDB:  cfg.MongoDB,
		DataDir:  cfg.DataDir,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	inventoryService := services.NewInventoryService(store, log)
	inventoryController := controllers.NewInventoryController(inventoryService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))

	routes.RegisterRoutes(r, inventoryController)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.Info("Parts service starting",
			zap.String("port", cfg.Port),
			zap.String("medium", store.Medium()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down parts service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error("Storage close failed", zap.Error(err))
	}

	log.Info("Parts service stopped gracefully")
}
