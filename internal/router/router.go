// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/HotaroAce/CineXerve/internal/config"
	"github.com/HotaroAce/CineXerve/internal/handler"
	"github.com/HotaroAce/CineXerve/internal/middleware"
)

// Handlers bundles the handler structs wired in main.
type Handlers struct {
	Auth     *handler.AuthHandler
	Movie    *handler.MovieHandler
	Showtime *handler.ShowtimeHandler
	Seat     *handler.SeatHandler
	Booking  *handler.BookingHandler
}

// RegisterRoutes registers every route of the API on the provided
// Echo instance. Browse endpoints are public; booking, cancellation
// and profile endpoints require a valid access token. The Redis
// client may be nil, which disables rate limiting and response
// caching.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.Use(echomw.CORS())

	e.GET("/healthz", handler.Health)

	auth := e.Group("/v1/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)
	auth.GET("/me", h.Auth.Me, middleware.JWTAuth(cfg.JWTSecret))
	auth.PATCH("/me", h.Auth.UpdateMe, middleware.JWTAuth(cfg.JWTSecret))

	cache := middleware.Cache(config.LoadCacheConfig(), rdb)

	movies := e.Group("/v1/movies")
	movies.GET("", h.Movie.List, cache)
	movies.GET("/:id", h.Movie.Get, cache)
	movies.POST("", h.Movie.Create)
	movies.PATCH("/:id", h.Movie.Update)
	movies.DELETE("/:id", h.Movie.Delete)

	showtimes := e.Group("/v1/showtimes")
	showtimes.GET("/by-id/:id", h.Showtime.Get)
	showtimes.GET("/:movieId", h.Showtime.ListByMovie)
	showtimes.POST("", h.Showtime.Create)
	showtimes.PATCH("/:id", h.Showtime.Update)
	showtimes.DELETE("/:id", h.Showtime.Delete)

	// Seat maps are polled by the seat picker; short-TTL cache.
	e.GET("/v1/seats/:showtimeId", h.Seat.ListByShowtime, cache)

	jwt := middleware.JWTAuth(cfg.JWTSecret)
	limit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	e.POST("/v1/book", h.Booking.Book, jwt, limit)
	e.DELETE("/v1/cancel/:bookingId", h.Booking.Cancel, jwt)
	e.GET("/v1/history/me", h.Booking.HistoryMe, jwt)
	e.GET("/v1/history/:user", h.Booking.HistoryByUser)
	e.GET("/v1/reservations", h.Booking.Reservations)
}
