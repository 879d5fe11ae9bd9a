package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dangqh/seafresh/controllers"
	"github.com/dangqh/seafresh/middleware"
)

// initUserRoutes mounts the storefront surface: public catalog and
// content, auth, checkout and the signed-in account endpoints
func initUserRoutes(api *gin.RouterGroup) {
	api.POST("/register", controllers.Register)
	api.POST("/login", controllers.Login)

	api.GET("/products", controllers.GetProducts)
	api.GET("/products/:slug", controllers.GetProductBySlug)
	api.GET("/categories", controllers.GetCategories)
	api.GET("/categories/:slug", controllers.GetCategoryBySlug)
	api.GET("/flash-sales/current", controllers.GetRunningFlashSale)
	api.GET("/articles", controllers.GetArticles)
	api.GET("/articles/:slug", controllers.GetArticleBySlug)
	api.GET("/tiers", controllers.GetTiers)

	// Order lookup works with or without a token; the handler scopes
	// the result to whichever identity it can establish
	api.GET("/orders", middleware.OptionalAuthMiddleware(), controllers.ListOrders)
	api.GET("/orders/track/:orderNumber", middleware.OptionalAuthMiddleware(), controllers.TrackOrder)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", controllers.Me)
		protected.POST("/orders", controllers.CreateOrder)
		protected.GET("/orders/:orderNumber/invoice", controllers.DownloadInvoice)
		protected.POST("/payments/initiate", controllers.InitiatePayment)
		protected.POST("/payments/verify", controllers.VerifyPayment)
		protected.GET("/coupons", controllers.GetMyCoupons)
		protected.GET("/membership", controllers.GetMembership)
	}
}
