package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moha528/quickpress-back/internal/shared/middleware"
	"github.com/moha528/quickpress-back/internal/shared/response"
	"github.com/moha528/quickpress-back/pkg/container"
)

// SetupRouter mounts the REST surface under /api and the RPC surface on
// /soap.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	auth := middleware.Auth(c.Tokens, c.UserService)

	router.GET("/", indexHandler(c))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler(c))

		setupAuthRoutes(api, c, auth)
		setupUserRoutes(api, c, auth)
		setupCategoryRoutes(api, c, auth)
		setupArticleRoutes(api, c, auth)
	}

	router.GET("/soap", c.SoapHandler.ServeWSDL)
	router.POST("/soap", c.SoapHandler.Dispatch)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	group := api.Group("/auth")
	{
		group.POST("/login", c.UserHandler.Login)
		group.POST("/register", c.UserHandler.Register)
		group.GET("/profile", auth, c.UserHandler.Profile)
	}
}

// User management is admin-only.
func setupUserRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	group := api.Group("/users")
	group.Use(auth, middleware.RequireAdmin())
	{
		group.GET("", c.UserHandler.List)
		group.GET("/:id", c.UserHandler.GetByID)
		group.POST("", c.UserHandler.Create)
		group.PUT("/:id", c.UserHandler.Update)
		group.DELETE("/:id", c.UserHandler.Delete)
	}
}

// Category reads are public; writes need an editor.
func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	group := api.Group("/categories")
	{
		group.GET("", c.CategoryHandler.List)
		group.GET("/:id", c.CategoryHandler.GetByID)
		group.POST("", auth, middleware.RequireEditor(), c.CategoryHandler.Create)
		group.PUT("/:id", auth, middleware.RequireEditor(), c.CategoryHandler.Update)
		group.DELETE("/:id", auth, middleware.RequireEditor(), c.CategoryHandler.Delete)
	}
}

// Article reads are public; writes need an editor.
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	group := api.Group("/articles")
	{
		group.GET("", c.ArticleHandler.List)
		group.GET("/category/:categoryId", c.ArticleHandler.ListByCategory)
		group.GET("/:id", c.ArticleHandler.GetByID)
		group.POST("", auth, middleware.RequireEditor(), c.ArticleHandler.Create)
		group.PUT("/:id", auth, middleware.RequireEditor(), c.ArticleHandler.Update)
		group.DELETE("/:id", auth, middleware.RequireEditor(), c.ArticleHandler.Delete)
	}
}

func indexHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    appCtx.Config.App.Name,
			"version": appCtx.Config.App.Version,
			"endpoints": gin.H{
				"rest": "/api",
				"soap": "/soap",
			},
		})
	}
}

func healthHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.DB.Ping(ctx); err != nil {
			dbStatus = "error"
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = "error"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, health)
	}
}
