package handler

import (
	"testing"

	"storefront-app/internal/checkout"
	"storefront-app/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplySubmitRequest(t *testing.T) {
	sess := &checkout.Session{PaymentMethod: models.PaymentMethodCOD}

	applySubmitRequest(sess, SubmitOrderRequest{
		Name:            "Rahim Uddin",
		Phone:           "01712345678",
		Email:           "rahim@example.com",
		DetailedAddress: "House 4, Road 2",
		PaymentMethod:   models.PaymentMethodBKash,
		Donation:        50,
	})

	assert.Equal(t, "Rahim Uddin", sess.Contact.Name)
	assert.Equal(t, models.PaymentMethodBKash, sess.PaymentMethod)
	assert.Equal(t, float64(50), sess.Donation)
}

func TestApplySubmitRequestClearsDonation(t *testing.T) {
	sess := &checkout.Session{PaymentMethod: models.PaymentMethodCOD}
	sess.Donation = 50

	// A retry without a donation field clears the previous amount.
	applySubmitRequest(sess, SubmitOrderRequest{
		Name:            "Rahim Uddin",
		Phone:           "01712345678",
		DetailedAddress: "House 4, Road 2",
	})

	assert.Zero(t, sess.Donation)
	assert.Equal(t, models.PaymentMethodCOD, sess.PaymentMethod, "payment method kept when omitted")
}
