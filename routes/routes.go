package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/configs"
	"github.com/solveighty/restaurant-mechita/controllers"
	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/middlewares"
	"github.com/solveighty/restaurant-mechita/pkg/mailer"
	"github.com/solveighty/restaurant-mechita/repository"
	"github.com/solveighty/restaurant-mechita/services"
)

// RegisterRoutes wires repositories, services and controllers and mounts
// every endpoint. All dependencies come in through parameters; nothing
// is pulled from globals.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, mail mailer.Mailer, log zerolog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	verifRepo := repository.NewVerificationRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, userRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, notifRepo, userSvc, services.SimulatedGateway{}, mail, log)
	notifSvc := services.NewNotificationService(notifRepo)
	reviewSvc := services.NewReviewService(reviewRepo, userRepo, orderRepo, userSvc)
	verifSvc := services.NewVerificationService(verifRepo, userRepo, mail, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	verifCtrl := controllers.NewVerificationController(verifSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	me := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		me.GET("/me", authCtrl.Me)
		me.PATCH("/me", authCtrl.UpdateMe)
		me.DELETE("/me", authCtrl.DeleteMe)
		me.GET("/me/addresses", userCtrl.Addresses)
		me.POST("/me/addresses", userCtrl.AddAddress)
		me.DELETE("/me/addresses/:id", userCtrl.RemoveAddress)
	}

	// Catalog (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Verification (public)
	v := r.Group("/verification")
	{
		v.POST("/send", verifCtrl.Send)
		v.POST("/verify", verifCtrl.Verify)
	}

	// Reviews
	r.GET("/reviews/page", reviewCtrl.Page)
	rv := r.Group("/reviews", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		rv.POST("", reviewCtrl.Create)
		rv.GET("/me", reviewCtrl.Mine)
	}

	// Cart + own orders + notifications
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.POST("/cart/checkout", cartCtrl.Checkout)

		u.GET("/orders", orderCtrl.ListMine)

		u.GET("/notifications", notifCtrl.Unread)
		u.PATCH("/notifications/:id/read", notifCtrl.MarkRead)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/users", userCtrl.List)
		admin.GET("/stats", orderCtrl.Stats)

		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.GET("/orders", orderCtrl.ListAll)
		admin.PATCH("/orders/:id/status", orderCtrl.SetStatus)
		admin.GET("/orders/sales", orderCtrl.Sales)

		admin.GET("/reviews/orders", reviewCtrl.Orders)
	}
}
