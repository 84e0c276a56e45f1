package handler

import (
	"errors"
	"net/http"

	"storefront-app/internal/address"
	"storefront-app/internal/cart"
	"storefront-app/internal/checkout"
	"storefront-app/internal/client"
	"storefront-app/internal/coupon"
	"storefront-app/internal/models"
	"storefront-app/internal/orders"
	"storefront-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	Catalog  *address.Catalog
	Carts    *cart.Store
	Coupons  *coupon.Engine
	Composer *checkout.Composer
	Sessions *checkout.Manager
	Orders   *orders.Store
	Tracking *client.OrderClient
}

func (h *CheckoutHandler) session(c *gin.Context) (*checkout.Session, bool) {
	userID := c.MustGet("userID").(uint)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
		return nil, false
	}
	return h.Sessions.Session(c.Request.Context(), &user), true
}

// AddressOptions returns the visible option list for the current selection
// state and search query, plus the rendered selection token.
func (h *CheckoutHandler) AddressOptions(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	query := c.Query("q")
	c.JSON(http.StatusOK, gin.H{
		"options":   h.Catalog.VisibleOptions(query, sess.Selection),
		"selection": sess.Selection,
		"token":     address.Token(sess.Selection, h.Catalog),
	})
}

type SelectAddressRequest struct {
	// Picks is the ordered interaction list the selection widget reports;
	// only the last element carries intent.
	Picks []address.Option `json:"picks"`
}

func (h *CheckoutHandler) SelectAddress(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req SelectAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject picks that don't exist in the catalog before reducing.
	for _, p := range req.Picks {
		if p.Type == address.OptionCity {
			if _, found := h.Catalog.CityIn(p.DistrictID, p.CityID); !found {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown city"})
				return
			}
		} else if _, found := h.Catalog.District(p.DistrictID); !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown district"})
			return
		}
	}

	sess.Selection = address.Reduce(sess.Selection, req.Picks)

	c.JSON(http.StatusOK, gin.H{
		"selection":    sess.Selection,
		"phase":        sess.Selection.Phase(),
		"token":        address.Token(sess.Selection, h.Catalog),
		"delivery_fee": h.Composer.Fee(sess.Selection),
	})
}

// Quote returns the current totals for the session.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	items, err := h.Carts.SelectedItems(c.Request.Context(), sess.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	subtotal := cart.Subtotal(items)
	fee := h.Composer.Fee(sess.Selection)
	c.JSON(http.StatusOK, gin.H{
		"subtotal":     subtotal,
		"delivery_fee": fee,
		"discount":     sess.Coupon.Discount,
		"donation":     sess.Donation,
		"grand_total":  checkout.Totals(subtotal, fee, sess.Coupon.Discount, sess.Donation),
		"status":       sess.Status(),
	})
}

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.Carts.SelectedItems(c.Request.Context(), sess.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	sess.Coupon = h.Coupons.Apply(c.Request.Context(), req.Code, cart.Subtotal(items))
	if sess.Coupon.ErrorMessage != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": sess.Coupon.ErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Coupon applied",
		"code":     sess.Coupon.Applied.Code,
		"discount": sess.Coupon.Discount,
	})
}

func (h *CheckoutHandler) RemoveCoupon(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	sess.Coupon = h.Coupons.Remove()
	c.JSON(http.StatusOK, gin.H{"message": "Coupon removed"})
}

type SubmitOrderRequest struct {
	Name            string  `json:"name" binding:"required"`
	Phone           string  `json:"phone" binding:"required"`
	Email           string  `json:"email"`
	DetailedAddress string  `json:"detailed_address" binding:"required"`
	PaymentMethod   string  `json:"payment_method"`
	Donation        float64 `json:"donation"`
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applySubmitRequest(sess, req)

	confirmation, err := h.Composer.Submit(c.Request.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, checkout.ErrAddressIncomplete),
			errors.Is(err, checkout.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, checkout.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order placed successfully",
		"invoice_id":  confirmation.InvoiceID,
		"grand_total": confirmation.GrandTotal,
		"item_count":  confirmation.ItemCount,
	})
}

// applySubmitRequest copies the submitted form onto the session. The request
// carries the whole form, so the donation is taken as-is: sending 0 clears a
// previously entered amount.
func applySubmitRequest(sess *checkout.Session, req SubmitOrderRequest) {
	sess.Contact = checkout.Contact{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		DetailedAddress: req.DetailedAddress,
	}
	if req.PaymentMethod != "" {
		sess.PaymentMethod = req.PaymentMethod
	}
	sess.Donation = req.Donation
}

func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	list, err := h.Orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// TrackOrder proxies the status lookup to the order service, falling back to
// the local record when the service is unreachable.
func (h *CheckoutHandler) TrackOrder(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	invoiceID := c.Param("invoice_id")

	local, err := h.Orders.ByInvoice(c.Request.Context(), userID, invoiceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	status, err := h.Tracking.Status(c.Request.Context(), invoiceID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"invoice_id": local.InvoiceID,
			"status":     local.Status,
			"placed_at":  local.PlacedAt,
			"stale":      true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice_id": status.InvoiceID,
		"status":     status.Status,
		"updated_at": status.UpdatedAt,
		"placed_at":  local.PlacedAt,
	})
}
