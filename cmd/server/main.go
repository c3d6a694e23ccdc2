package main // Entry point package

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest-api/internal/config"
	"github.com/staynest/staynest-api/internal/database"
	"github.com/staynest/staynest-api/internal/handler"
	"github.com/staynest/staynest-api/internal/queue"
	"github.com/staynest/staynest-api/internal/repository"
	"github.com/staynest/staynest-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	cancel()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	users := repository.NewUserRepo(db)
	places := repository.NewPlaceRepo(db)
	bookings := repository.NewBookingRepo(db, places)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Deps{
		Cfg:      cfg,
		Auth:     handler.NewAuthHandler(cfg, users),
		Places:   handler.NewPlaceHandler(places),
		Bookings: handler.NewBookingHandler(bookings, places),
		Uploads:  handler.NewUploadHandler(cfg.UploadDir),
		Redis:    config.NewRedisClient(),
		CacheCfg: config.LoadCacheConfig(),
	})

	// Background consumer logs booking.created events; it reconnects on
	// its own and never takes the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
