package server

import (
	"fmt"
	"net/http"

	"guesthub/internal/config"
	"guesthub/internal/middleware"
	"guesthub/internal/modules/auth"
	"guesthub/internal/modules/booking"
	"guesthub/internal/modules/catalog"
	jwtsvc "guesthub/internal/pkg/jwt"
	"guesthub/internal/pkg/response"
	"guesthub/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New migrates the schema and returns the dev booking API router. Every
// route lives under /api.
func New(cfg *config.ServerConfig, db *gorm.DB, rooms catalog.Catalog) (*gin.Engine, error) {
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	if err := userRepo.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate users: %w", err)
	}
	if err := bookingRepo.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate bookings: %w", err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(rooms)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger(!cfg.IsProduction()))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected, middleware.BookingAdmins())
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return r, nil
}
