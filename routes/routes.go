package routes

import (
	"github.com/3bdelrahman-ibrahim/foodash/configs"
	"github.com/3bdelrahman-ibrahim/foodash/controllers"
	"github.com/3bdelrahman-ibrahim/foodash/middlewares"
	"github.com/3bdelrahman-ibrahim/foodash/repository"
	"github.com/3bdelrahman-ibrahim/foodash/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	catalogSvc := services.NewCatalogService(restRepo, foodRepo)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, foodRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	foodCtrl := controllers.NewFoodController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Identity (public)
	r.POST("/signup", authCtrl.Signup)
	r.POST("/signin", authCtrl.Signin)

	// Catalog (public browse)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:restaurantId", restCtrl.Detail)
	r.GET("/restaurants/:restaurantId/foods", foodCtrl.ListForRestaurant)
	r.GET("/restaurants/:restaurantId/orders", orderCtrl.ListForRestaurant)
	r.GET("/top", restCtrl.Top)
	r.GET("/popular", restCtrl.Popular)
	r.GET("/foods", foodCtrl.List)

	r.POST("/restaurants", auth, restCtrl.Create)
	r.POST("/restaurants/:restaurantId/foods", auth, foodCtrl.Create)

	// Users
	users := r.Group("/users", auth)
	{
		users.GET("", userCtrl.List)
		users.GET("/:userId", userCtrl.Get)
		users.PUT("/:userId", userCtrl.Update)

		// Cart
		users.GET("/:userId/cart", cartCtrl.Get)
		users.POST("/:userId/cart", cartCtrl.AddItem)
		users.PUT("/:userId/cart", cartCtrl.SetQuantityByFood)
		users.PUT("/:userId/cart/items/:itemId", cartCtrl.SetQuantityByLine)
		users.DELETE("/:userId/cart/items/:itemId", cartCtrl.RemoveByLine)
		users.DELETE("/:userId/cart/foods/:foodId", cartCtrl.RemoveByFood)
		users.DELETE("/:userId/cart", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/mine", orderCtrl.ListMine)
		orders.POST("", orderCtrl.Place)
		orders.PUT("/:orderId/status", orderCtrl.UpdateStatus)
	}
}
