package handler

import (
	"net/http"
	"strings"

	"storefront-app/internal/models"
	"storefront-app/pkg/database"

	"github.com/gin-gonic/gin"
)

// CatalogAdminHandler manages the product catalog. Admin only.
type CatalogAdminHandler struct{}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	BrandName   string  `json:"brand_name" binding:"required"`
	CategoryID  *uint   `json:"category_id"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	Sizes       string  `json:"sizes"`
	ImageURL    string  `json:"image_url"`
}

func (h *CatalogAdminHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find or Create Brand
	var brand models.Brand
	if err := database.DB.FirstOrCreate(&brand, models.Brand{Name: req.BrandName}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process brand"})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Slug:        slugify(req.BrandName + "-" + req.Name),
		BrandID:     brand.ID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Sizes:       req.Sizes,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *CatalogAdminHandler) SetProductActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&models.Product{}).Where("id = ?", c.Param("id")).Update("is_active", *req.IsActive)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func (h *CatalogAdminHandler) ListBrands(c *gin.Context) {
	var brands []models.Brand
	if err := database.DB.Find(&brands).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CatalogAdminHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CatalogAdminHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "-")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
}
