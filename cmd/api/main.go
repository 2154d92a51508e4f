package main

import (
	"log"
	"time"

	"github.com/arnav1824/stagepass_admin/cache"
	config "github.com/arnav1824/stagepass_admin/configs"
	"github.com/arnav1824/stagepass_admin/database"
	"github.com/arnav1824/stagepass_admin/gateway"
	"github.com/arnav1824/stagepass_admin/handlers"
	"github.com/arnav1824/stagepass_admin/jobs"
	"github.com/arnav1824/stagepass_admin/mutation"
	"github.com/arnav1824/stagepass_admin/routes"
	"github.com/arnav1824/stagepass_admin/services"
	"github.com/arnav1824/stagepass_admin/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()

	tokens := gateway.NewMemoryTokenStore()
	gw := gateway.NewClient(
		config.ConfigOr("MARKETPLACE_API_URL", "http://localhost:3000"),
		config.Config("MARKETPLACE_API_KEY"),
		tokens,
	)

	queryCache := cache.New(cache.DefaultTTL)
	engine := mutation.NewEngine(queryCache)
	hub := websocket.NewHub()

	queries := services.NewQueryService(gw, queryCache)
	verification := services.NewVerificationService(gw, engine, database.DB, hub)
	withdrawals := services.NewWithdrawalService(gw, engine, queryCache, database.DB, hub)

	h := handlers.New(gw, tokens, queries, verification, withdrawals, hub, database.DB)

	cacheJobs := jobs.NewCacheJobs(queryCache, queries)
	c := cron.New()
	c.AddFunc("*/5 * * * *", cacheJobs.SweepCache)
	c.AddFunc("*/10 * * * *", cacheJobs.WarmDashboard)
	c.Start()
	log.Println("✅ Cache maintenance jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       "StagePass Admin Console",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app, h)
	routes.AdminRoutes(app, h)
	routes.WebsocketRoutes(app, h)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
