package routes

import (
	"github.com/elshafee/Horus-cafee-managment/configs"
	"github.com/elshafee/Horus-cafee-managment/controllers"
	"github.com/elshafee/Horus-cafee-managment/middlewares"
	"github.com/elshafee/Horus-cafee-managment/repository"
	"github.com/elshafee/Horus-cafee-managment/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories → services → controllers and mounts the
// paths. The public paths are the ones the shipped Flutter app and the ESP32
// firmware already call; they must not move.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.UploadDir, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(productRepo)
	orderSvc := services.NewOrderService(db, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(orderSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/register_web", authCtrl.RegisterWeb)
		a.POST("/update_profile", authCtrl.UpdateProfile)
		a.GET("/profile_image/:staff_id", authCtrl.ProfileImage)
	}

	// Catalog
	r.GET("/products", productCtrl.List)
	r.GET("/seed", productCtrl.Seed)

	// Orders
	r.POST("/order", orderCtrl.Create)
	r.POST("/order/status", orderCtrl.UpdateStatus)
	r.GET("/orders/active/:office_boy_id", orderCtrl.ActiveForOfficeBoy)
	r.GET("/orders/:staff_id", orderCtrl.ListForStaff)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/orders", adminCtrl.ListOrders)
	}
}
