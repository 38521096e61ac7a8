package products

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/aurafashions/server/aura/products"
	"github.com/aurafashions/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListProductsHandler godoc
// @Summary List products
// @Description Public catalog listing with optional category/color/size filters. With grouped=true and no size filter, size variants are collapsed into one row per product/color
// @Tags products
// @Produce json
// @Param category query string false "Filter by category (t-shirt, hoodie)"
// @Param color query string false "Filter by color (black, white)"
// @Param size query string false "Filter by size (S, M, L, XL)"
// @Param grouped query bool false "Group size variants"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(50)
// @Success 200 {array} products.Product
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [get]
func ListProductsHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query ListQuery

		if err := c.ShouldBindQuery(&query); err != nil {
			errors.ValidationError(c, err)
			return
		}

		filter := products.Filter{
			Category: strings.ToLower(query.Category),
			Color:    strings.ToLower(query.Color),
			Size:     strings.ToUpper(query.Size),
			Skip:     query.Skip,
			Limit:    query.Limit,
		}

		var (
			list []products.Product
			err  error
		)

		if query.Grouped && filter.Size == "" {
			list, err = productRepo.ListGrouped(c.Request.Context(), filter)
		} else {
			list, err = productRepo.List(c.Request.Context(), filter)
		}

		if err != nil {
			errors.InternalError(c, "failed to list products", err)
			return
		}

		if list == nil {
			list = []products.Product{}
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetProductHandler godoc
// @Summary Get a product
// @Description Public single-product lookup, including the available sizes and colors of its variants
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} products.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func GetProductHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := errors.PathID(c, "id")
		if !ok {
			return
		}

		product, err := productRepo.FindByID(c.Request.Context(), productID)
		if err != nil {
			if stderrors.Is(err, products.ErrProductNotFound) {
				errors.NotFound(c, "product")
				return
			}

			errors.InternalError(c, "failed to load product", err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GetProductVariantsHandler godoc
// @Summary List product variants
// @Description All size/color variants sharing the product's name and category
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} products.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id}/variants [get]
func GetProductVariantsHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := errors.PathID(c, "id")
		if !ok {
			return
		}

		variants, err := productRepo.VariantsOf(c.Request.Context(), productID)
		if err != nil {
			if stderrors.Is(err, products.ErrProductNotFound) {
				errors.NotFound(c, "product")
				return
			}

			errors.InternalError(c, "failed to load product variants", err)
			return
		}

		c.JSON(http.StatusOK, variants)
	}
}

// CreateProductHandler godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param request body products.CreateProductRequest true "Product"
// @Success 201 {object} products.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /products [post]
// @Security BearerAuth
func CreateProductHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req products.CreateProductRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		category, ok := products.NormalizeCategory(req.Category)
		if !ok {
			errors.BadRequest(c, "category must be 't-shirt' or 'hoodie'", nil)
			return
		}

		color, ok := products.NormalizeColor(req.Color)
		if !ok {
			errors.BadRequest(c, "color must be 'black' or 'white'", nil)
			return
		}

		size, ok := products.NormalizeSize(req.Size)
		if !ok {
			errors.BadRequest(c, "size must be 'S', 'M', 'L', or 'XL'", nil)
			return
		}

		req.Category = category
		req.Color = color
		req.Size = size

		product, err := productRepo.Create(c.Request.Context(), req)
		if err != nil {
			errors.InternalError(c, "failed to create product", err)
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Partial update; omitted fields are left unchanged
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body products.UpdateProductRequest true "Fields to update"
// @Success 200 {object} products.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
// @Security BearerAuth
func UpdateProductHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := errors.PathID(c, "id")
		if !ok {
			return
		}

		var req products.UpdateProductRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Category != nil {
			category, ok := products.NormalizeCategory(*req.Category)
			if !ok {
				errors.BadRequest(c, "category must be 't-shirt' or 'hoodie'", nil)
				return
			}

			req.Category = &category
		}

		if req.Color != nil {
			color, ok := products.NormalizeColor(*req.Color)
			if !ok {
				errors.BadRequest(c, "color must be 'black' or 'white'", nil)
				return
			}

			req.Color = &color
		}

		if req.Size != nil {
			size, ok := products.NormalizeSize(*req.Size)
			if !ok {
				errors.BadRequest(c, "size must be 'S', 'M', 'L', or 'XL'", nil)
				return
			}

			req.Size = &size
		}

		product, err := productRepo.Update(c.Request.Context(), productID, req)
		if err != nil {
			if stderrors.Is(err, products.ErrProductNotFound) {
				errors.NotFound(c, "product")
				return
			}

			errors.InternalError(c, "failed to update product", err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 {string} string "No Content"
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
// @Security BearerAuth
func DeleteProductHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := errors.PathID(c, "id")
		if !ok {
			return
		}

		err := productRepo.Delete(c.Request.Context(), productID)
		if err != nil {
			if stderrors.Is(err, products.ErrProductNotFound) {
				errors.NotFound(c, "product")
				return
			}

			errors.InternalError(c, "failed to delete product", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
