package main

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"agency-backend/internal/catalog"
	"agency-backend/internal/chatbot"
	"agency-backend/internal/config"
	"agency-backend/internal/health"
	"agency-backend/internal/logger"
	"agency-backend/internal/middleware"
	"agency-backend/internal/recommend"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	app := fiber.New()
	setupCORS(app, cfg)
	app.Use(middleware.RequestLog(log))

	// the database is optional: without it the server still runs and the
	// /test diagnostic reports it as not available
	db := openDB(cfg, log)
	if db != nil {
		defer db.Close()
	}

	catalogRepo := catalog.NewInMemoryRepository()
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))
	catalogHandler.RegisterPublicRoutes(app)

	recommendHandler := recommend.NewHandler(recommend.NewService(catalogRepo))
	recommendHandler.RegisterPublicRoutes(app)

	chatbotHandler := chatbot.NewHandler(chatbot.NewService())
	chatbotHandler.RegisterPublicRoutes(app)

	healthService := health.NewService(health.NewPostgresRepository(db), cfg.DatabaseURL != "", cfg.DatabaseName != "")
	healthHandler := health.NewHandler(healthService)
	healthHandler.RegisterPublicRoutes(app)

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func setupCORS(app *fiber.App, cfg config.Config) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func openDB(cfg config.Config, log *zap.Logger) *sql.DB {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, running without database")
		return nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Warn("could not open database", zap.Error(err))
		return nil
	}
	if err := db.Ping(); err != nil {
		// keep the handle: /test re-pings and reports the error
		log.Warn("database ping failed", zap.Error(err))
	}
	return db
}
