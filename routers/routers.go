package routers

import (
	"Ecommerce/gateway"
	"Ecommerce/handlers"
	"Ecommerce/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRouters(db *gorm.DB, rdb *redis.Client, gw gateway.Gateway) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil
	}

	api := router.Group("/api/v1")

	//// auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", func(c *gin.Context) {
			handlers.RegisterHandler(c, db)
		})
		auth.POST("/login", func(c *gin.Context) {
			handlers.LoginHandler(c, db)
		})
		auth.POST("/forgot-password", func(c *gin.Context) {
			handlers.ForgotPasswordHandler(c, db)
		})
		auth.GET("/test", middleware.RequireSignIn(), middleware.IsAdmin(db), handlers.TestHandler)
		auth.GET("/user-auth", middleware.RequireSignIn(), handlers.UserAuthHandler)
		auth.GET("/admin-auth", middleware.RequireSignIn(), middleware.IsAdmin(db), handlers.AdminAuthHandler)

		signedIn := auth.Group("", middleware.RequireSignIn())
		{
			signedIn.PUT("/profile", func(c *gin.Context) {
				handlers.UpdateProfileHandler(c, db)
			})
			signedIn.GET("/orders", func(c *gin.Context) {
				handlers.GetOrdersHandler(c, db)
			})
		}

		admin := auth.Group("", middleware.RequireSignIn(), middleware.IsAdmin(db))
		{
			admin.GET("/all-orders", func(c *gin.Context) {
				handlers.GetAllOrdersHandler(c, db)
			})
			admin.PUT("/order-status/:orderId", func(c *gin.Context) {
				handlers.OrderStatusHandler(c, db)
			})
		}
	}

	//// categories
	category := api.Group("/category")
	{
		category.GET("", func(c *gin.Context) {
			handlers.ListCategoriesHandler(c, db)
		})
		category.GET("/:slug", func(c *gin.Context) {
			handlers.GetCategoryHandler(c, db)
		})

		admin := category.Group("", middleware.RequireSignIn(), middleware.IsAdmin(db))
		{
			admin.POST("", func(c *gin.Context) {
				handlers.CreateCategoryHandler(c, db)
			})
			admin.PUT("/:id", func(c *gin.Context) {
				handlers.UpdateCategoryHandler(c, db)
			})
			admin.DELETE("/:id", func(c *gin.Context) {
				handlers.DeleteCategoryHandler(c, db)
			})
		}
	}

	//// products
	product := api.Group("/product")
	{
		product.GET("", func(c *gin.Context) {
			handlers.GetProductsHandler(c, db)
		})
		product.GET("/product-count", func(c *gin.Context) {
			handlers.ProductCountHandler(c, db, rdb)
		})
		product.GET("/product-list/:page", func(c *gin.Context) {
			handlers.ProductListHandler(c, db, rdb)
		})
		product.GET("/search/:keyword", func(c *gin.Context) {
			handlers.SearchProductHandler(c, db)
		})
		product.GET("/related-product/:pid/:cid", func(c *gin.Context) {
			handlers.RelatedProductHandler(c, db)
		})
		product.GET("/product-category/:slug", func(c *gin.Context) {
			handlers.ProductCategoryHandler(c, db)
		})
		product.GET("/product-photo/:pid", func(c *gin.Context) {
			handlers.ProductPhotoHandler(c, db)
		})
		product.POST("/product-filters", func(c *gin.Context) {
			handlers.ProductFiltersHandler(c, db)
		})
		product.GET("/braintree/token", func(c *gin.Context) {
			handlers.BraintreeTokenHandler(c, gw)
		})
		product.POST("/braintree/payment", middleware.RequireSignIn(), func(c *gin.Context) {
			handlers.BraintreePaymentHandler(c, db, gw)
		})
		// slug lookup goes last so the fixed paths above win
		product.GET("/:slug", func(c *gin.Context) {
			handlers.GetProductHandler(c, db)
		})

		admin := product.Group("", middleware.RequireSignIn(), middleware.IsAdmin(db))
		{
			admin.POST("", func(c *gin.Context) {
				handlers.CreateProductHandler(c, db, rdb)
			})
			admin.PUT("/:pid", func(c *gin.Context) {
				handlers.UpdateProductHandler(c, db, rdb)
			})
			admin.DELETE("/:pid", func(c *gin.Context) {
				handlers.DeleteProductHandler(c, db, rdb)
			})
		}
	}

	return router
}
