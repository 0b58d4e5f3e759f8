package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/database"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/router"
	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb := config.NewRedisClient() // may be nil; rate limiting degrades to a no-op
	if rdb == nil {
		log.Printf("redis unavailable; auth rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	theaters := repository.NewTheaterRepo(db)
	movies := repository.NewMovieRepo(db)
	tickets := repository.NewTicketRepo(db)

	authSvc := service.NewAuthService(users, cfg.JWTSecret)
	bookingSvc := service.NewBookingService(tickets, theaters, queue.PublishTicketBooked)
	catalogSvc := service.NewCatalogService(movies, theaters)

	e := echo.New()
	router.Register(e, router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Booking: handler.NewBookingHandler(bookingSvc),
		Catalog: handler.NewCatalogHandler(catalogSvc),
	}, cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)

	// Background consumer mirrors booking events into logs/booking.log.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
