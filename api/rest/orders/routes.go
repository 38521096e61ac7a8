package orders

import (
	"github.com/aurafashions/server/aura/orders"
	"github.com/aurafashions/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers order routes; all of them require authentication
func RegisterRoutes(router *gin.RouterGroup, orderRepo *orders.Repository, validator *auth.Validator) {
	ordersGroup := router.Group("/orders")
	ordersGroup.Use(auth.Middleware(validator))
	{
		ordersGroup.POST("", CreateOrderHandler(orderRepo))
		ordersGroup.GET("/my", ListMyOrdersHandler(orderRepo))
		ordersGroup.GET("/:id", GetOrderHandler(orderRepo))
	}
}
