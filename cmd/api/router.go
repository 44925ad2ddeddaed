package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	userModel "ecommerce-backend/internal/domains/user/model"
	"ecommerce-backend/internal/shared/middleware"
	"ecommerce-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupRankingRoutes(v1, c)
		setupVoucherRoutes(v1, c)
		setupPromotionRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH / USER ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.Me)
	}
}

// ========================================
// RANKING ROUTES (public)
// ========================================
func setupRankingRoutes(v1 *gin.RouterGroup, c *container.Container) {
	rankings := v1.Group("/rankings")
	{
		rankings.GET("", c.RankingHandler.ListRankings)
		rankings.GET("/name/:name", c.RankingHandler.GetRankingByName)
		rankings.GET("/:id", c.RankingHandler.GetRanking)
	}
}

// ========================================
// VOUCHER ROUTES (customer)
// ========================================
func setupVoucherRoutes(v1 *gin.RouterGroup, c *container.Container) {
	vouchers := v1.Group("/vouchers")
	vouchers.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireRoles(userModel.RoleCustomer),
	)
	{
		vouchers.GET("/available", c.VoucherHandler.GetAvailable)
	}
}

// ========================================
// PROMOTION ROUTES (public)
// ========================================
func setupPromotionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	promotions := v1.Group("/promotions")
	{
		promotions.GET("/applicable", c.PromotionHandler.Applicable)
		promotions.GET("/:id", c.PromotionHandler.Get)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	)

	vouchers := admin.Group("/vouchers")
	{
		vouchers.POST("", c.VoucherHandler.Create)
		vouchers.GET("", c.VoucherHandler.List)
		vouchers.GET("/:id", c.VoucherHandler.Get)
		vouchers.PUT("/:id", c.VoucherHandler.Update)
		vouchers.PATCH("/:id/status", c.VoucherHandler.ChangeStatus)
		vouchers.POST("/:id/send", c.VoucherHandler.Send)
		vouchers.GET("/:id/export", c.VoucherHandler.Export)
	}

	promotions := admin.Group("/promotions")
	{
		promotions.POST("", c.PromotionHandler.Create)
		promotions.GET("", c.PromotionHandler.List)
		promotions.GET("/:id", c.PromotionHandler.Get)
		promotions.PUT("/:id", c.PromotionHandler.Update)
		promotions.DELETE("/:id", c.PromotionHandler.Delete)
		promotions.PATCH("/:id/status", c.PromotionHandler.ChangeStatus)
	}

	customers := admin.Group("/customers")
	{
		customers.POST("/:id/spending", c.UserHandler.RecordSpending)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		cacheStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = fmt.Sprintf("error: %v", err)
		}

		// storage chỉ ảnh hưởng export, không làm API unhealthy
		storageStatus := "unavailable"
		if hc, ok := appCtx.Storage.(interface{ HealthCheck(context.Context) error }); ok {
			storageStatus = "ok"
			if err := hc.HealthCheck(ctx); err != nil {
				storageStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
			"storage":  storageStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, health)
	}
}
