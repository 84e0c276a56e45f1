package handler

import (
	"net/http"

	"storefront-app/config"
	"storefront-app/internal/models"
	"storefront-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct{}

func (h *PublicHandler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, config.AppConfig.Site)
}

func (h *PublicHandler) ListProducts(c *gin.Context) {
	query := database.DB.Preload("Brand").Preload("Category").Where("is_active = ?", true)

	if brand := c.Query("brand"); brand != "" {
		query = query.Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.name = ?", brand)
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("products.name LIKE ?", "%"+search+"%")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *PublicHandler) GetProduct(c *gin.Context) {
	var product models.Product
	if err := database.DB.Preload("Brand").Preload("Category").
		Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *PublicHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"payment_methods": models.PaymentMethods})
}
