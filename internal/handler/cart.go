package handler

import (
	"net/http"
	"strconv"

	"storefront-app/internal/cart"
	"storefront-app/internal/checkout"
	"storefront-app/internal/models"
	"storefront-app/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartHandler struct {
	Carts    *cart.Store
	Sessions *checkout.Manager
}

type AddToCartRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := database.DB.Where("id = ? AND is_active = ?", req.ProductID, true).First(&product).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product"})
		return
	}

	item, err := h.Carts.AddItem(c.Request.Context(), userID, product, req.Size, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) List(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	items, err := h.Carts.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	var selected []models.CartItem
	for _, it := range items {
		if it.Selected {
			selected = append(selected, it)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"subtotal": cart.Subtotal(selected),
	})
}

type UpdateCartItemRequest struct {
	Quantity *int  `json:"quantity"`
	Selected *bool `json:"selected"`
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if req.Quantity != nil {
		if err := h.Carts.UpdateQuantity(ctx, userID, uint(itemID), *req.Quantity); err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
	}
	if req.Selected != nil {
		if err := h.Carts.SetSelected(ctx, userID, uint(itemID), *req.Selected); err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
	}

	h.resetSessionIfEmpty(c, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if err := h.Carts.RemoveItems(c.Request.Context(), userID, []uint{uint(itemID)}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
		return
	}

	h.resetSessionIfEmpty(c, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// resetSessionIfEmpty clears checkout selection and coupon state once the
// cart has no lines left.
func (h *CartHandler) resetSessionIfEmpty(c *gin.Context, userID uint) {
	items, err := h.Carts.List(c.Request.Context(), userID)
	if err != nil {
		return
	}
	h.Sessions.ResetIfCartEmpty(userID, len(items))
}
