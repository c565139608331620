package handlers

import (
	"net/http"

	"github.com/ByteOps02/URL-Shortener/internal/middleware"
	"github.com/ByteOps02/URL-Shortener/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RateLimiters groups the per-tier limiters applied in front of the
// handlers. Any of them may be nil, which disables that tier.
type RateLimiters struct {
	Global  *services.IPRateLimiter
	Auth    *services.IPRateLimiter
	Shorten *services.IPRateLimiter
}

func (h *Handler) SetupRouter(limiters RateLimiters) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if limiters.Global != nil {
		r.Use(h.RateLimitMiddleware(limiters.Global))
	}

	// Stage 1: resolve an optional bearer identity for every request.
	r.Use(middleware.Authenticate(h.db, h.tokens))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is up and running..."})
	})

	user := r.Group("/user")
	if limiters.Auth != nil {
		user.Use(h.RateLimitMiddleware(limiters.Auth))
	}
	{
		user.POST("/signup", h.Signup)
		user.POST("/login", h.Login)
	}

	shorten := r.Group("/")
	if limiters.Shorten != nil {
		shorten.Use(h.RateLimitMiddleware(limiters.Shorten))
	}
	{
		shorten.POST("/shorten-free", h.ShortenFree)
		shorten.POST("/shorten", middleware.RequireAuth(), h.Shorten)
	}

	// Stage 2: routes below need a resolved identity.
	authorized := r.Group("/")
	authorized.Use(middleware.RequireAuth())
	{
		authorized.GET("/codes", h.ListCodes)
		authorized.DELETE("/:id", h.DeleteLink)
	}

	// Catch-all Redirect
	r.GET("/:shortCode", h.RedirectToURL)

	return r
}
