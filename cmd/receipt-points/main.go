package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	. "github.com/DrGermanius/receipt-points/internal"
)

func main() {
	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	store := NewStore(sugaredLogger)
	service := NewService(store, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	receipts := app.Group("/receipts")
	receipts.Post("/process", handlers.ProcessReceipt)
	receipts.Get("/:id/points", handlers.GetPoints)

	go func() {
		sugaredLogger.Fatal(app.Listen(cfg.RunAddress))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
