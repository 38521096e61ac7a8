package products

import (
	"github.com/aurafashions/server/aura/products"
	"github.com/aurafashions/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers catalog routes; reads are public, writes are admin-only
func RegisterRoutes(router *gin.RouterGroup, productRepo *products.Repository, validator *auth.Validator) {
	router.GET("/products", ListProductsHandler(productRepo))
	router.GET("/products/:id", GetProductHandler(productRepo))
	router.GET("/products/:id/variants", GetProductVariantsHandler(productRepo))

	adminGroup := router.Group("/products")
	adminGroup.Use(auth.Middleware(validator), auth.AdminMiddleware())
	{
		adminGroup.POST("", CreateProductHandler(productRepo))
		adminGroup.PUT("/:id", UpdateProductHandler(productRepo))
		adminGroup.DELETE("/:id", DeleteProductHandler(productRepo))
	}
}
