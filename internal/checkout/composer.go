package checkout

import (
	"context"
	"errors"
	"regexp"
	"time"

	"storefront-app/internal/address"
	"storefront-app/internal/cart"
	"storefront-app/internal/draft"
	"storefront-app/internal/models"
	"storefront-app/internal/shipping"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Validation errors block submission locally; no upstream call is made.
var (
	ErrEmptyCart          = errors.New("no items selected for checkout")
	ErrAddressIncomplete  = errors.New("please select your district and area")
	ErrInvalidPhone       = errors.New("please enter a valid phone number")
	ErrSubmissionInFlight = errors.New("an order submission is already in progress")

	// ErrSubmissionFailed is the single generic, retryable message for any
	// order-service failure. Cart and form state are left untouched.
	ErrSubmissionFailed = errors.New("could not place your order, please try again")
)

var phonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)

// Config carries the identifiers stamped onto every order payload.
type Config struct {
	StoreID        string
	SalesChannelID string
}

// Composer aggregates cart, address selection and coupon state into the
// final order payload and performs the exactly-once submission.
type Composer struct {
	catalog  *address.Catalog
	cart     Cart
	orders   OrderService
	notifier CouponNotifier
	drafts   draft.Store
	recorder OrderRecorder
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time
	newToken func() string
}

func NewComposer(
	catalog *address.Catalog,
	c Cart,
	orders OrderService,
	notifier CouponNotifier,
	drafts draft.Store,
	recorder OrderRecorder,
	cfg Config,
	log zerolog.Logger,
) *Composer {
	return &Composer{
		catalog:  catalog,
		cart:     c,
		orders:   orders,
		notifier: notifier,
		drafts:   drafts,
		recorder: recorder,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		newToken: fallbackInvoiceID,
	}
}

// Totals computes the grand total. The formula applies no lower bound: a
// discount larger than subtotal+fee+donation yields a negative result, which
// is recorded as-is.
func Totals(subtotal, deliveryFee, discount, donation float64) float64 {
	return subtotal + deliveryFee - discount + donation
}

// Confirmation is the successful-submission handoff to the confirmation
// surface.
type Confirmation struct {
	InvoiceID  string  `json:"invoice_id"`
	GrandTotal float64 `json:"grand_total"`
	ItemCount  int     `json:"item_count"`
}

// Fee resolves the delivery fee for the session's committed selection.
func (c *Composer) Fee(s address.State) float64 {
	districtName, cityName := c.resolveNames(s)
	return shipping.Fee(districtName, cityName)
}

func (c *Composer) resolveNames(s address.State) (string, string) {
	var districtName, cityName string
	if d, ok := c.catalog.District(s.SelectedDistrict); ok {
		districtName = d.Name
	}
	if city, ok := c.catalog.CityIn(s.SelectedDistrict, s.SelectedCity); ok {
		cityName = city.Name
	}
	return districtName, cityName
}

// Submit runs the whole submission flow for sess. Exactly one submission may
// be in flight per session; the slot is claimed before any suspension point
// and released on every exit. Draft persistence and coupon-usage
// notification are best-effort: their failures are logged and never block
// the order.
func (c *Composer) Submit(ctx context.Context, sess *Session) (Confirmation, error) {
	if !sess.beginSubmit() {
		return Confirmation{}, ErrSubmissionInFlight
	}

	items, err := c.cart.SelectedItems(ctx, sess.UserID)
	if err != nil {
		c.log.Error().Err(err).Uint("user_id", sess.UserID).Msg("failed to read cart")
		sess.endSubmit(StatusIdle)
		return Confirmation{}, ErrSubmissionFailed
	}
	if len(items) == 0 {
		sess.endSubmit(StatusIdle)
		return Confirmation{}, ErrEmptyCart
	}
	// Draft-seeded selection ids may no longer exist in the catalog; an
	// unresolvable pair is as incomplete as an empty one.
	districtName, cityName := c.resolveNames(sess.Selection)
	if districtName == "" || cityName == "" {
		sess.endSubmit(StatusIdle)
		return Confirmation{}, ErrAddressIncomplete
	}
	if !phonePattern.MatchString(sess.Contact.Phone) {
		sess.endSubmit(StatusIdle)
		return Confirmation{}, ErrInvalidPhone
	}

	sess.setStatus(StatusSubmitting)

	c.persistDraft(ctx, sess)

	payload := c.buildPayload(sess, items)

	if sess.Coupon.Applied != nil {
		if err := c.notifier.NotifyUsage(ctx, sess.Coupon.Applied.Code); err != nil {
			c.log.Warn().Err(err).Str("code", sess.Coupon.Applied.Code).
				Msg("coupon usage notification failed")
		}
	}

	result, err := c.orders.Submit(ctx, payload)
	if err != nil || !result.Success {
		if err != nil {
			c.log.Error().Err(err).Uint("user_id", sess.UserID).Msg("order submission failed")
		} else {
			c.log.Error().Str("reason", result.Error).Uint("user_id", sess.UserID).
				Msg("order submission rejected")
		}
		// Failed accepts a new submission straight away; only the flag gates.
		sess.endSubmit(StatusFailed)
		return Confirmation{}, ErrSubmissionFailed
	}

	invoiceID := result.InvoiceID
	if invoiceID == "" {
		invoiceID = c.newToken()
	}

	itemIDs := make([]uint, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.ID)
	}
	if err := c.cart.RemoveItems(ctx, sess.UserID, itemIDs); err != nil {
		c.log.Warn().Err(err).Uint("user_id", sess.UserID).
			Msg("failed to remove submitted items from cart")
	}

	c.recordOrder(ctx, sess, payload, invoiceID)

	sess.endSubmit(StatusSucceeded)
	sess.ResetCheckoutState()

	return Confirmation{
		InvoiceID:  invoiceID,
		GrandTotal: payload.GrandTotal,
		ItemCount:  len(items),
	}, nil
}

func (c *Composer) buildPayload(sess *Session, items []models.CartItem) OrderPayload {
	districtName, cityName := c.resolveNames(sess.Selection)
	subtotal := cart.Subtotal(items)
	fee := shipping.Fee(districtName, cityName)
	// The recorded discount is trusted as-is; the order service owns final
	// coupon validation.
	discount := sess.Coupon.Discount

	payloadItems := make([]PayloadItem, 0, len(items))
	for _, it := range items {
		size := it.Size
		if size == "" {
			size = "standard"
		}
		payloadItems = append(payloadItems, PayloadItem{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Size:      size,
		})
	}

	var couponCode string
	if sess.Coupon.Applied != nil {
		couponCode = sess.Coupon.Applied.Code
	}

	return OrderPayload{
		StoreID:        c.cfg.StoreID,
		SalesChannelID: c.cfg.SalesChannelID,
		CustomerName:   sess.Contact.Name,
		Phone:          sess.Contact.Phone,
		Email:          sess.Contact.Email,
		District:       districtName,
		City:           cityName,
		Address:        sess.Contact.DetailedAddress,
		PaymentMethod:  sess.PaymentMethod,
		Items:          payloadItems,
		Subtotal:       subtotal,
		DeliveryFee:    fee,
		Discount:       discount,
		CouponCode:     couponCode,
		Donation:       sess.Donation,
		GrandTotal:     Totals(subtotal, fee, discount, sess.Donation),
		CreatedAt:      c.now(),
	}
}

func (c *Composer) persistDraft(ctx context.Context, sess *Session) {
	snap := draft.Snapshot{
		Name:            sess.Contact.Name,
		Phone:           sess.Contact.Phone,
		Email:           sess.Contact.Email,
		DetailedAddress: sess.Contact.DetailedAddress,
		PaymentMethod:   sess.PaymentMethod,
		District:        sess.Selection.SelectedDistrict,
		City:            sess.Selection.SelectedCity,
	}
	if err := c.drafts.Put(ctx, sess.UserID, snap); err != nil {
		c.log.Warn().Err(err).Uint("user_id", sess.UserID).Msg("failed to persist checkout draft")
	}
}

func (c *Composer) recordOrder(ctx context.Context, sess *Session, payload OrderPayload, invoiceID string) {
	if c.recorder == nil {
		return
	}
	order := &models.Order{
		InvoiceID:       invoiceID,
		UserID:          sess.UserID,
		CustomerName:    payload.CustomerName,
		Phone:           payload.Phone,
		Email:           payload.Email,
		District:        payload.District,
		City:            payload.City,
		DetailedAddress: payload.Address,
		PaymentMethod:   payload.PaymentMethod,
		Subtotal:        payload.Subtotal,
		DeliveryFee:     payload.DeliveryFee,
		Discount:        payload.Discount,
		CouponCode:      payload.CouponCode,
		Donation:        payload.Donation,
		GrandTotal:      payload.GrandTotal,
		Status:          models.OrderStatusPending,
		PlacedAt:        payload.CreatedAt,
	}
	for _, it := range payload.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Size:        it.Size,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	if err := c.recorder.Record(ctx, order); err != nil {
		c.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("failed to record order locally")
	}
}

func fallbackInvoiceID() string {
	return "INV-" + uuid.NewString()
}
