package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/stepfolio/stepfolio/internal/actions"
	"github.com/stepfolio/stepfolio/internal/config"
	"github.com/stepfolio/stepfolio/internal/earn"
	"github.com/stepfolio/stepfolio/internal/market"
	"github.com/stepfolio/stepfolio/internal/middleware"
	"github.com/stepfolio/stepfolio/internal/notification"
	"github.com/stepfolio/stepfolio/internal/transfer"
	"github.com/stepfolio/stepfolio/internal/user"
	"github.com/stepfolio/stepfolio/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Without a
// database the service falls back to in-memory stores, which is only
// allowed in development.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	RegisterHealthRoutes(app, d)

	var walletRepo wallet.Repository
	var notificationRepo notification.Repository
	var userRepo user.Repository
	var transferLog transfer.Log
	if d.DB != nil {
		walletRepo = wallet.NewPostgresRepository(d.DB)
		notificationRepo = notification.NewPostgresRepository(d.DB)
		userRepo = user.NewPostgresRepository(d.DB)
		transferLog = transfer.NewPostgresLog(d.DB)
	} else {
		walletRepo = wallet.NewMemoryRepository()
		notificationRepo = notification.NewMemoryRepository()
		userRepo = user.NewMemoryRepository()
		transferLog = transfer.NewMemoryLog()
	}

	userSvc := user.NewService(userRepo)
	walletSvc := wallet.NewService(walletRepo, userSvc)
	notificationSvc := notification.NewService(notificationRepo, userSvc)
	transferSvc := transfer.NewService(walletRepo, transferLog, notificationSvc)
	earnSvc := earn.NewService(walletRepo)
	marketSvc := market.NewService(
		market.NewCoinGeckoClient(d.Cfg.MarketBaseURL), d.Cache, d.Cfg.PriceCacheTTL, d.Logger)

	api := app.Group("/api")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals(middleware.RequestIDHeader).(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterMarketRoutes(api, market.NewHandler(marketSvc))
	RegisterWalletRoutes(api, wallet.NewHandler(walletSvc))
	RegisterTransferRoutes(api, transfer.NewHandler(transferSvc))
	RegisterNotificationRoutes(api, notification.NewHandler(notificationSvc))
	RegisterActionRoutes(api, actions.NewHandler(d.Cfg.ExchangeRates))
	RegisterEarnRoutes(api, earn.NewHandler(earnSvc))

	return nil
}
