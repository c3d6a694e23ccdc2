package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/staynest/staynest-api/internal/config"
	"github.com/staynest/staynest-api/internal/handler"
	"github.com/staynest/staynest-api/internal/metrics"
	"github.com/staynest/staynest-api/internal/middleware"
)

// Deps carries everything route registration needs.
type Deps struct {
	Cfg      config.Config
	Auth     *handler.AuthHandler
	Places   *handler.PlaceHandler
	Bookings *handler.BookingHandler
	Uploads  *handler.UploadHandler
	Redis    *redis.Client
	CacheCfg config.CacheConfig
}

// Register wires the whole HTTP surface: CORS locked to the configured
// frontend origin with credentials (the session rides in a cookie),
// request metrics on everything, the static photo directory, the public
// browse routes behind the response cache, and the session-guarded group.
func Register(e *echo.Echo, d Deps) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{d.Cfg.FrontendOrigin},
		AllowCredentials: true,
	}))
	e.Use(metrics.Middleware())

	e.GET("/healthz", handler.Health)
	e.GET("/metrics", metrics.Handler())
	e.Static("/uploads", d.Cfg.UploadDir)

	sess := middleware.Session(d.Cfg.JWTSecret)

	// Account endpoints.  Profile runs the session middleware but stays
	// reachable anonymously; it answers null in that case.
	e.POST("/register", d.Auth.Register)
	e.POST("/login", d.Auth.Login)
	e.GET("/profile", d.Auth.Profile, sess)
	e.POST("/logout", d.Auth.Logout)

	// Public browse routes, served through the Redis response cache.
	cache := middleware.Cache(d.Redis, d.CacheCfg)
	e.GET("/places", d.Places.ListAll, cache)
	e.GET("/places/:id", d.Places.GetByID, cache)

	// Everything below requires a valid session cookie.
	auth := e.Group("", sess, middleware.RequireSession())
	auth.POST("/places", d.Places.Create)
	auth.GET("/user-places", d.Places.ListMine)
	auth.PUT("/places/:id", d.Places.Update)
	auth.POST("/bookings", d.Bookings.Create)
	auth.GET("/bookings", d.Bookings.ListMine)
	auth.POST("/upload-by-link", d.Uploads.ByLink)
	auth.POST("/upload", d.Uploads.Multipart)
}
