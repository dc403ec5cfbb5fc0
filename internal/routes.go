package internal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, h *Handlers, jwtSecret string) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", RequireOperator(jwtSecret))

	orders := api.Group("/orders")
	orders.Get("/:id", h.GetOrder)
	orders.Post("/:id/validation", h.ValidateOrder)
	orders.Get("/:id/validations", h.ValidationHistory)

	cash := api.Group("/cash")
	cash.Post("/entries", h.RecordCollection)
	cash.Post("/entries/:id/discrepancy", h.FlagDiscrepancy)
	cash.Post("/entries/:id/accept", h.AcceptEntry)
	cash.Get("/collections", h.ListCollections)
	cash.Post("/reconcile", h.Reconcile)
	cash.Get("/review", h.ReviewQueue)

	cr := api.Group("/credit")
	cr.Get("/accounts", h.ListCreditAccounts)
	cr.Put("/accounts", h.UpsertCreditAccount)

	api.Get("/wallet/stats", h.WalletStats)
}
