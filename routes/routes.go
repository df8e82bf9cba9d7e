package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ger123348/NgopiBareng/configs"
	"github.com/ger123348/NgopiBareng/controllers"
	"github.com/ger123348/NgopiBareng/middlewares"
	"github.com/ger123348/NgopiBareng/pkg/storage"
	"github.com/ger123348/NgopiBareng/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, blobs storage.ObjectStore) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()
	secret := cfg.JWTSecret

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	cafeCtrl := controllers.NewCafeController(services.NewCafeService(db, blobs), cfg)
	reviewCtrl := controllers.NewReviewController(services.NewReviewService(db))
	campusCtrl := controllers.NewCampusController(services.NewCampusService(db, blobs), cfg)
	adminCtrl := controllers.NewAdminController(services.NewDashboardService(db))

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// Public — OptionalAuth เพราะ admin ที่ filter status เห็นมากกว่าคนทั่วไป
	r.GET("/cafes", middlewares.OptionalAuth(secret), cafeCtrl.List)
	r.GET("/cafes/:id", cafeCtrl.Detail)
	r.GET("/campuses", campusCtrl.List)

	// User (ต้องล็อกอิน)
	u := r.Group("/", middlewares.AuthMiddleware(secret))
	{
		u.POST("/cafes", cafeCtrl.Submit)
		u.POST("/cafes/:id/menu-items", cafeCtrl.AddMenuItem)
		u.POST("/reviews", reviewCtrl.Create)
		u.PUT("/reviews/:id", reviewCtrl.Update)
		u.DELETE("/reviews/:id", reviewCtrl.Delete)
	}

	// Admin (admin only)
	admin := r.Group("/", middlewares.AuthMiddleware(secret, "admin"))
	{
		admin.PATCH("/cafes/:id/status", cafeCtrl.UpdateStatus)
		admin.DELETE("/cafes/:id", cafeCtrl.Delete)
		admin.DELETE("/reviews/admin/:id", reviewCtrl.AdminDelete)
		admin.POST("/campuses", campusCtrl.Create)
		admin.GET("/admin/stats", adminCtrl.Stats)
	}
}
