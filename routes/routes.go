package routes

import (
	"github.com/NebiyouChanie/sapore/configs"
	"github.com/NebiyouChanie/sapore/controllers"
	"github.com/NebiyouChanie/sapore/middlewares"
	"github.com/NebiyouChanie/sapore/pkg/mailer"
	"github.com/NebiyouChanie/sapore/repository"
	"github.com/NebiyouChanie/sapore/services"
	"github.com/NebiyouChanie/sapore/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, mail mailer.Mailer, feed *ws.FeedHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	settingsRepo := repository.NewMenuSettingsRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Services
	authSvc := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	categorySvc := services.NewCategoryService(categoryRepo, menuItemRepo)
	menuSvc := services.NewMenuService(menuItemRepo, settingsRepo)
	settingsSvc := services.NewMenuSettingsService(settingsRepo)
	// a nil *FeedHub must stay a nil interface inside the service
	var feedPub services.FeedPublisher
	if feed != nil {
		feedPub = feed
	}
	reservationSvc := services.NewReservationService(reservationRepo, mail, feedPub, cfg.NotifyEmail)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.JWTTTL)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	menuItemCtrl := controllers.NewMenuItemController(menuSvc)
	settingsCtrl := controllers.NewMenuSettingsController(settingsSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)

	admin := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/signin", authCtrl.SignIn)
	}

	// Categories
	r.GET("/categories", categoryCtrl.List)
	r.POST("/categories", admin, categoryCtrl.Create)
	r.PUT("/categories/:id", admin, categoryCtrl.Update)
	r.DELETE("/categories/:id", admin, categoryCtrl.Delete)

	// Menu items
	r.GET("/menu-items", menuItemCtrl.List)
	r.GET("/menu-items/:id", menuItemCtrl.Get)
	r.POST("/menu-items", admin, menuItemCtrl.Create)
	r.PUT("/menu-items/:id", admin, menuItemCtrl.Update)
	r.DELETE("/menu-items/:id", admin, menuItemCtrl.Delete)

	// Menu settings (admin panel only)
	settings := r.Group("/menu-settings", admin)
	{
		settings.GET("", settingsCtrl.Get)
		settings.POST("", settingsCtrl.Update)
	}

	// Reservations; the per-id routes stay open for guests following
	// their reservation link
	r.POST("/reservations", reservationCtrl.Create)
	r.GET("/reservations", admin, reservationCtrl.List)
	r.GET("/reservations/:id", reservationCtrl.Get)
	r.PUT("/reservations/:id", reservationCtrl.Update)
	r.DELETE("/reservations/:id", reservationCtrl.Delete)
	r.PATCH("/reservations/:id", reservationCtrl.UpdateStatus)

	// Admin live feed
	if feed != nil {
		r.GET("/ws/admin/feed", middlewares.WSAuthMiddleware(cfg.JWTSecret), feed.HandleWebSocket)
	}
}
