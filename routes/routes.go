package routes

import (
	"github.com/andyrob2215/AAASmores/configs"
	"github.com/andyrob2215/AAASmores/controllers"
	"github.com/andyrob2215/AAASmores/middlewares"
	"github.com/andyrob2215/AAASmores/repository"
	"github.com/andyrob2215/AAASmores/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	ingRepo := repository.NewIngredientRepository(db)
	discRepo := repository.NewDiscountRepository(db)
	configRepo := repository.NewConfigRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	dashRepo := repository.NewDashboardRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, ingRepo, configRepo, discRepo)
	queueSvc := services.NewQueueService(orderRepo)
	menuSvc := services.NewMenuService(db, menuRepo)
	discSvc := services.NewDiscountService(discRepo)
	configSvc := services.NewConfigService(db, configRepo)
	reviewSvc := services.NewReviewService(reviewRepo)
	authSvc := services.NewAuthService(staffRepo, cfg.JWTSecret, cfg.JWTTTL)
	dashSvc := services.NewDashboardService(dashRepo, menuRepo, ingRepo, discRepo, configSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	queueCtrl := controllers.NewQueueController(queueSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, cfg)
	ingCtrl := controllers.NewIngredientController(ingRepo)
	discCtrl := controllers.NewDiscountController(discSvc)
	configCtrl := controllers.NewConfigController(configSvc, cfg)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	adminCtrl := controllers.NewAdminController(dashSvc)

	// Public
	r.POST("/auth/login", authCtrl.Login)
	r.GET("/menu", menuCtrl.List)
	r.GET("/ingredients", ingCtrl.List)
	r.GET("/queue", queueCtrl.List)
	r.GET("/config", configCtrl.Get)
	r.GET("/reviews", reviewCtrl.List)
	r.POST("/reviews", reviewCtrl.Create)
	r.POST("/feedback", reviewCtrl.CreateFeedback)
	r.POST("/discounts/validate", discCtrl.Validate)
	r.POST("/orders", orderCtrl.Create)
	r.PUT("/orders/:id/payment-method", orderCtrl.ChangePaymentMethod)
	r.GET("/unpaid", orderCtrl.ListUnpaid)

	// Staff (bearer token)
	staff := r.Group("/", middlewares.AuthMiddleware())
	{
		staff.GET("/admin/dashboard", adminCtrl.Dashboard)
		staff.PUT("/orders/:id/status", orderCtrl.UpdateStatus)
		staff.PUT("/orders/:id/pickup", orderCtrl.Pickup)
		staff.PUT("/admin/orders/:id/mark-paid", orderCtrl.MarkPaid)
		staff.PUT("/admin/orders/:id/delete", orderCtrl.Cancel)

		staff.POST("/config", configCtrl.Update)
		staff.POST("/config/background", configCtrl.SetBackground)

		staff.POST("/ingredients", ingCtrl.Create)
		staff.PUT("/ingredients/:id/toggle", ingCtrl.Toggle)
		staff.DELETE("/ingredients/:id", ingCtrl.Delete)

		staff.POST("/menu", menuCtrl.Create)
		staff.PUT("/menu/:id", menuCtrl.Update)
		staff.DELETE("/menu/:id", menuCtrl.Delete)

		staff.POST("/discounts", discCtrl.Create)
		staff.DELETE("/discounts/:id", discCtrl.Delete)
	}
}
