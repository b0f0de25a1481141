package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/configs"
	"github.com/albertkemp/home-cooking/controllers"
	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/middlewares"
	"github.com/albertkemp/home-cooking/repository"
	"github.com/albertkemp/home-cooking/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	itemRepo := repository.NewFoodItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	imgRepo := repository.NewImageRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	mealSvc := services.NewMealService(db, menuRepo, itemRepo, imgRepo)
	orderSvc := services.NewOrderService(db, orderRepo, itemRepo, cartRepo)
	reviewSvc := services.NewReviewService(reviewRepo, userRepo, itemRepo)
	cartSvc := services.NewCartService(db, cartRepo, itemRepo)
	uploadSvc := services.NewUploadService(
		services.NewDiskStore(cfg.UploadDir, "/uploads"), imgRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	mealCtrl := controllers.NewMealController(mealSvc)
	browseCtrl := controllers.NewBrowseController(mealSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	cookCtrl := controllers.NewCookController(userRepo, reviewSvc)
	uploadCtrl := controllers.NewUploadController(uploadSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	r.GET("/auth/me", auth(), authCtrl.Me)

	// Account settings
	account := r.Group("/account", auth())
	{
		account.GET("", authCtrl.Account)
		account.PATCH("", authCtrl.UpdateAccount)
	}

	// Public browse / cook profiles / reviews
	r.GET("/browse/meals", browseCtrl.List)
	r.GET("/cooks/:id", cookCtrl.Profile)
	r.GET("/reviews", reviewCtrl.List)

	// Meals (cook only)
	meals := r.Group("/meals", auth(entity.RoleCook, entity.RoleAdmin))
	{
		meals.GET("", mealCtrl.ListForMe)
		meals.POST("", mealCtrl.Create)
		meals.GET("/:id", mealCtrl.Detail)
		meals.PATCH("/:id", mealCtrl.Update)
		meals.DELETE("/:id", mealCtrl.Delete)
	}

	// Orders
	u := r.Group("/", auth())
	{
		u.POST("/orders", orderCtrl.Create)
		u.DELETE("/orders/:id", orderCtrl.Cancel)
		u.GET("/my-orders", orderCtrl.ListForMe)
	}
	r.PATCH("/orders/:id", auth(entity.RoleCook), orderCtrl.UpdateStatus)
	r.GET("/cook/orders", auth(entity.RoleCook), orderCtrl.ListForCook)

	// Reviews
	r.POST("/reviews", auth(), reviewCtrl.Create)

	// Cart
	cart := r.Group("/cart", auth())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	// Uploads
	r.POST("/upload", auth(), uploadCtrl.Upload)
}
