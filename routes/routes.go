package routes

import (
	"github.com/gin-gonic/gin"

	"eats-backend/configs"
	"eats-backend/controllers"
	"eats-backend/middlewares"
	"eats-backend/repository"
	"eats-backend/services"
	"eats-backend/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	gateway := services.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.FrontendURL)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(db, restRepo)

	hub := ws.NewOrderHub(restSvc)
	go hub.Run()

	checkoutSvc := services.NewCheckoutService(db, orderRepo, restRepo, gateway, hub)
	webhookSvc := services.NewWebhookService(orderRepo, gateway, hub)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	myUserCtrl := controllers.NewMyUserController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	myRestCtrl := controllers.NewMyRestaurantController(restSvc)
	orderCtrl := controllers.NewOrderController(checkoutSvc, webhookSvc, orderSvc)
	ownerOrderCtrl := controllers.NewMyRestaurantOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	ownerAuth := middlewares.AuthMiddleware(cfg.JWTSecret, "owner")

	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Public catalog
	rest := api.Group("/restaurant")
	{
		rest.GET("/search/:city", restCtrl.Search)
		rest.GET("/:restaurantId", restCtrl.Detail)
	}

	// Orders (user)
	order := api.Group("/order", auth)
	{
		order.GET("", orderCtrl.ListForMe)
		order.POST("/checkout/create-session", orderCtrl.CreateCheckoutSession)
	}
	// Webhook is unauthenticated; the signature is the authentication.
	api.POST("/order/checkout/webhook", orderCtrl.StripeWebhook)

	// My profile / restaurant
	my := api.Group("/my", auth)
	{
		my.PUT("/user", myUserCtrl.Update)

		my.GET("/restaurant", myRestCtrl.Get)
		my.POST("/restaurant", myRestCtrl.Create)
		my.PUT("/restaurant", myRestCtrl.Update)

		// role checked inside Serve; owners re-login after creating a restaurant
		my.GET("/restaurant/order/ws", hub.Serve)
	}

	// Owner order dashboard (role claim gated)
	ownerOrders := api.Group("/my/restaurant/order", ownerAuth)
	{
		ownerOrders.GET("", ownerOrderCtrl.List)
		ownerOrders.PATCH("/:orderId/status", ownerOrderCtrl.UpdateStatus)
	}
}
