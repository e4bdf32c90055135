package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/HotaroAce/CineXerve/internal/config"
	"github.com/HotaroAce/CineXerve/internal/handler"
	"github.com/HotaroAce/CineXerve/internal/queue"
	"github.com/HotaroAce/CineXerve/internal/reservation"
	"github.com/HotaroAce/CineXerve/internal/router"
	queue_publisher "github.com/HotaroAce/CineXerve/internal/service"
	"github.com/HotaroAce/CineXerve/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db := store.New()
	index := reservation.NewSeatMap()
	if err := store.Seed(db, index, cfg.BcryptCost); err != nil {
		log.Fatal(err)
	}
	if err := db.LoadUsersFile(cfg.DataDir); err != nil {
		log.Printf("load users: %v", err)
	}

	processor := reservation.NewProcessor(db, index)
	defer processor.Stop()

	bookings := handler.NewBookingHandler(db, index, processor)
	bookings.PublishEvent = queue_publisher.PublishBookingConfirmed

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e, cfg, router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, db),
		Movie:    handler.NewMovieHandler(db, index),
		Showtime: handler.NewShowtimeHandler(db, index),
		Seat:     handler.NewSeatHandler(db),
		Booking:  bookings,
	}, rdb)

	addr := ":" + cfg.Port
	log.Printf("CineXerve API listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
