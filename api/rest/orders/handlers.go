package orders

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/aurafashions/server/aura/orders"
	"github.com/aurafashions/server/internal/auth"
	"github.com/aurafashions/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// CreateOrderHandler godoc
// @Summary Create an order
// @Description Prices the requested items at current catalog prices, decrements stock and records the order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body orders.CreateOrderRequest true "Order items"
// @Success 201 {object} orders.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders [post]
// @Security BearerAuth
func CreateOrderHandler(orderRepo *orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req orders.CreateOrderRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if len(req.Items) == 0 {
			errors.BadRequest(c, "order must have at least one item", nil)
			return
		}

		order, err := orderRepo.Create(c.Request.Context(), user.ID, req)
		if err != nil {
			var notFound *orders.ProductNotFoundError
			if stderrors.As(err, &notFound) {
				errors.NotFound(c, fmt.Sprintf("product with ID %d", notFound.ProductID))
				return
			}

			var noStock *orders.InsufficientStockError
			if stderrors.As(err, &noStock) {
				errors.BadRequest(c, noStock.Error(), nil)
				return
			}

			errors.InternalError(c, "failed to create order", err)
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// ListMyOrdersHandler godoc
// @Summary List my orders
// @Tags orders
// @Produce json
// @Success 200 {array} orders.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders/my [get]
// @Security BearerAuth
func ListMyOrdersHandler(orderRepo *orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		list, err := orderRepo.ListByUser(c.Request.Context(), user.ID)
		if err != nil {
			errors.InternalError(c, "failed to list orders", err)
			return
		}

		if list == nil {
			list = []orders.Order{}
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetOrderHandler godoc
// @Summary Get an order
// @Description Owners see their own orders; admins see any
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} orders.Order
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
// @Security BearerAuth
func GetOrderHandler(orderRepo *orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		orderID, ok := errors.PathID(c, "id")
		if !ok {
			return
		}

		order, err := orderRepo.FindByID(c.Request.Context(), orderID)
		if err != nil {
			if stderrors.Is(err, orders.ErrOrderNotFound) {
				errors.NotFound(c, "order")
				return
			}

			errors.InternalError(c, "failed to load order", err)
			return
		}

		if order.UserID != user.ID && !user.IsAdmin() {
			errors.Forbidden(c, "access denied")
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
