package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/happyhours/backend/internal/auth"
	"github.com/happyhours/backend/internal/config"
	"github.com/happyhours/backend/internal/database"
	"github.com/happyhours/backend/internal/handler"
	"github.com/happyhours/backend/internal/middleware"
	"github.com/happyhours/backend/internal/queue"
	"github.com/happyhours/backend/internal/realtime"
	"github.com/happyhours/backend/internal/repository"
	"github.com/happyhours/backend/internal/router"
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis carries the realtime broadcast channels across server
	// processes; without it the order feed cannot run.
	rdb, err := config.NewRedisClient()
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	bus := realtime.NewRedisBus(rdb)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	establishments := repository.NewEstablishmentRepo(db)
	beverages := repository.NewBeverageRepo(db)
	orders := repository.NewOrderRepo(db)

	gate := auth.NewGate(cfg.JWTSecret, users)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	partnerHandler := handler.NewPartnerHandler(establishments, beverages, orders)
	orderHandler := handler.NewOrderHandler(orders, beverages, establishments, bus)
	realtimeHandler := handler.NewRealtimeHandler(gate, establishments, orders, bus)

	limiter := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret, limiter)
	router.RegisterPartner(e, partnerHandler, orderHandler, cfg.JWTSecret)
	router.RegisterClient(e, partnerHandler, orderHandler, cfg.JWTSecret)
	router.RegisterRealtime(e, realtimeHandler)

	// Background consumer writing the order audit log; reconnects on its own.
	go func() {
		if err := queue.StartOrderPlacedConsumer(); err != nil {
			log.Printf("order-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
