package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal"
	"github.com/DrGermanius/Gophercash/internal/ledger"
	"github.com/DrGermanius/Gophercash/internal/notify"
)

func main() {
	//decimals at json as numbers
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer sugaredLogger.Sync()

	cfg, err := internal.NewConfig()
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	repository, err := internal.NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer repository.Close()

	var gateway ledger.Gateway
	if cfg.LedgerSystemAddress != "" {
		gateway = ledger.NewCachedGateway(ledger.NewHTTPGateway(cfg.LedgerSystemAddress, cfg.LedgerTimeout, sugaredLogger), cfg.LedgerCacheTTL)
	} else {
		sugaredLogger.Warn("ledger system address is empty, credit checks use cached balances")
	}

	publishers := notify.Fanout{notify.NewLogPublisher(sugaredLogger)}
	if cfg.NotifyWebhookURL != "" {
		publishers = append(publishers, notify.NewWebhookPublisher(cfg.NotifyWebhookURL, cfg.NotifyTimeout))
	}
	notifier := notify.NewDetached(publishers, cfg.NotifyTimeout, sugaredLogger)

	service := internal.NewService(repository, gateway, notifier, cfg, sugaredLogger)
	handlers := internal.NewHandlers(service, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())
	internal.SetupRoutes(app, handlers, cfg.JWTSecret)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err = app.Shutdown(); err != nil {
		sugaredLogger.Error(err)
	}
}
