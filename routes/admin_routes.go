package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dangqh/seafresh/controllers"
	"github.com/dangqh/seafresh/middleware"
)

// initAdminRoutes mounts the back-office surface behind the admin role
// check
func initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", controllers.GetDashboard)

		admin.GET("/products", controllers.GetProducts)
		admin.GET("/products/:id", controllers.AdminGetProduct)
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)

		admin.GET("/categories", controllers.AdminListCategories)
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		admin.GET("/coupons", controllers.AdminListCoupons)
		admin.POST("/coupons", controllers.CreateCoupon)
		admin.PUT("/coupons/:id", controllers.UpdateCoupon)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)

		admin.GET("/flash-sales", controllers.AdminListFlashSales)
		admin.POST("/flash-sales", controllers.CreateFlashSale)
		admin.PUT("/flash-sales/:id", controllers.UpdateFlashSale)
		admin.DELETE("/flash-sales/:id", controllers.DeleteFlashSale)

		admin.GET("/articles", controllers.AdminListArticles)
		admin.POST("/articles", controllers.CreateArticle)
		admin.PUT("/articles/:id", controllers.UpdateArticle)
		admin.DELETE("/articles/:id", controllers.DeleteArticle)

		admin.GET("/orders", controllers.AdminListOrders)
		admin.GET("/orders/:id", controllers.AdminGetOrder)
		admin.PUT("/orders/:id/status", controllers.AdminUpdateOrderStatus)
		admin.PUT("/orders/:id/payment-status", controllers.AdminUpdatePaymentStatus)

		admin.GET("/users", controllers.AdminListUsers)
		admin.GET("/users/:id", controllers.AdminGetUser)
		admin.PUT("/users/:id/block", controllers.AdminSetUserBlocked)

		admin.GET("/statistics", controllers.GetStatistics)
		admin.GET("/statistics/export", controllers.DownloadStatisticsExcel)
	}
}
