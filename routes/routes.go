package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"biketrak-api/config"
	"biketrak-api/controllers"
	"biketrak-api/middleware"
	"biketrak-api/repositories"
	"biketrak-api/services"
	"biketrak-api/storage"
)

func SetupRoutes(r *gin.Engine, db *mongo.Database, cfg *config.Config, emailService *services.EmailService, images *storage.ImageStore) {
	users := repositories.NewUserRepository(db)
	bikes := repositories.NewMotorbikeRepository(db)

	authController := controllers.NewAuthController(users, cfg.JWTSecret, emailService)
	bikeController := controllers.NewMotorbikeController(bikes, images)

	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret)

	// Auth routes (public, rate limited)
	auth := r.Group("/api/auth", middleware.RateLimit(30, 10))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Catalog routes; reads are public, mutations need a valid token
	motorbikes := r.Group("/api/motorbikes")
	{
		motorbikes.GET("", bikeController.GetMotorbikes)
		motorbikes.GET("/:id", bikeController.GetMotorbike)
		motorbikes.POST("", requireAuth, bikeController.CreateMotorbike)
		motorbikes.PUT("/:id", requireAuth, bikeController.UpdateMotorbike)
		motorbikes.DELETE("/:id", requireAuth, bikeController.DeleteMotorbike)
	}

	// Static frontend
	page := func(name string) gin.HandlerFunc {
		file := filepath.Join(cfg.PublicDir, name)
		return func(c *gin.Context) { c.File(file) }
	}
	r.GET("/", page("signup.html"))
	r.GET("/login", page("login.html"))
	r.GET("/homepage", page("homepage.html"))
	r.GET("/motorbike", page("motorbike.html"))
	r.GET("/admin", requireAuth, page("admin.html"))

	r.Static("/js", filepath.Join(cfg.PublicDir, "js"))
	r.Static(storage.URLPrefix, images.Dir())
}
