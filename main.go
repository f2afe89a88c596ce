package main

import (
	"fomo/config"
	controllers "fomo/controllers/course"
	"fomo/database"
	"fomo/drafts"
	"fomo/gateway"
	"fomo/logger"
	"fomo/middleware"
	"fomo/routers/courseRoutes"
	"fomo/utils"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLog.Sync()

	db, err := database.ConnectDb(cfg, appLog)
	if err != nil {
		appLog.Fatal("database unavailable", "error", err)
	}

	registry := drafts.NewRegistry()
	scheduler, err := utils.InitializeDraftScheduler(cfg.DraftSweepCron, cfg.DraftIdleTTL, registry, appLog)
	if err != nil {
		appLog.Fatal("invalid DRAFT_SWEEP_CRON", "schedule", cfg.DraftSweepCron, "error", err)
	}

	api := gateway.New(cfg.APIBaseURL, cfg.APITimeout)
	dc := &controllers.DraftController{
		Drafts:      registry,
		Gateway:     func(token string) controllers.CourseGateway { return api.WithToken(token) },
		Submissions: database.NewSubmissions(db),
		Log:         appLog,
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	app.Use(middleware.Recovery())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(fiberLogger.New(fiberLogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courseRoutes.SetupAdminCourseRoutes(app, dc, cfg.JWTKey)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		appLog.Info("shutting down")
		<-scheduler.Stop().Done()
		_ = app.Shutdown()
	}()

	appLog.Info("server is running", "port", cfg.Port, "api_base_url", cfg.APIBaseURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
