package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	. "github.com/voyagio/sellerwallet/internal"
)

func main() {
	cfg, err := NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	service := NewService(repository, sugaredLogger)
	handlers := NewHandlers(service, cfg.JWTSecret, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	seller := api.Group("/seller")
	seller.Get("/balance", handlers.GetBalance)

	seller.Get("/accounts", handlers.ListBankAccounts)
	seller.Post("/accounts", handlers.CreateBankAccount)
	seller.Post("/accounts/:id/default", handlers.SetDefaultBankAccount)
	seller.Delete("/accounts/:id", handlers.DeleteBankAccount)

	seller.Post("/withdrawals/validate", handlers.ValidateWithdrawal)
	seller.Get("/withdrawals/availability", handlers.WithdrawalAvailability)
	seller.Get("/withdrawals", handlers.ListWithdrawals)
	seller.Post("/withdrawals", handlers.CreateWithdrawal)
	seller.Post("/withdrawals/:id/cancel", handlers.CancelWithdrawal)

	seller.Get("/statistics", handlers.GetStatistics)

	admin := api.Group("/admin")
	admin.Get("/withdrawals", handlers.ListPendingWithdrawals)
	admin.Patch("/withdrawals/:id", handlers.DecideWithdrawal)

	go func() {
		sugaredLogger.Fatal(app.Listen(cfg.RunAddress))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
