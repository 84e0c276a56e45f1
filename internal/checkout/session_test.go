package checkout

import (
	"context"
	"errors"
	"testing"

	"storefront-app/internal/address"
	"storefront-app/internal/coupon"
	"storefront-app/internal/draft"
	"storefront-app/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downDrafts struct{}

func (downDrafts) Put(context.Context, uint, draft.Snapshot) error {
	return errors.New("storage unavailable")
}

func (downDrafts) Get(context.Context, uint) (draft.Snapshot, bool, error) {
	return draft.Snapshot{}, false, errors.New("storage unavailable")
}

func TestSessionSeedFromDraft(t *testing.T) {
	drafts := draft.NewMemoryStore()
	require.NoError(t, drafts.Put(context.Background(), 7, draft.Snapshot{
		Name:            "Rahim Uddin",
		Phone:           "01712345678",
		Email:           "rahim@example.com",
		DetailedAddress: "House 4, Road 2",
		PaymentMethod:   models.PaymentMethodBKash,
		District:        "dhaka",
		City:            "mirpur",
	}))

	m := NewManager(drafts, zerolog.Nop())
	sess := m.Session(context.Background(), &models.User{ID: 7})

	assert.Equal(t, "Rahim Uddin", sess.Contact.Name)
	assert.Equal(t, "01712345678", sess.Contact.Phone)
	assert.Equal(t, models.PaymentMethodBKash, sess.PaymentMethod)
	assert.Equal(t, "dhaka", sess.Selection.SelectedDistrict)
	assert.Equal(t, "mirpur", sess.Selection.SelectedCity)
	assert.Equal(t, StatusIdle, sess.Status())
}

func TestSessionProfileOverridesDraft(t *testing.T) {
	drafts := draft.NewMemoryStore()
	require.NoError(t, drafts.Put(context.Background(), 7, draft.Snapshot{
		Name:  "Old Name",
		Phone: "01700000000",
		Email: "old@example.com",
	}))

	m := NewManager(drafts, zerolog.Nop())
	sess := m.Session(context.Background(), &models.User{
		ID: 7,
		Name:  "Karim Ahmed",
		Phone: "01898765432",
	})

	assert.Equal(t, "Karim Ahmed", sess.Contact.Name)
	assert.Equal(t, "01898765432", sess.Contact.Phone)
	assert.Equal(t, "old@example.com", sess.Contact.Email, "draft value kept where profile is empty")
}

func TestSessionDefaultsWithoutDraft(t *testing.T) {
	m := NewManager(draft.NewMemoryStore(), zerolog.Nop())
	sess := m.Session(context.Background(), &models.User{ID: 3})

	assert.Equal(t, models.PaymentMethodCOD, sess.PaymentMethod)
	assert.Equal(t, address.State{}, sess.Selection)
	assert.Equal(t, StatusIdle, sess.Status())
}

func TestSessionSeedSurvivesDraftStoreError(t *testing.T) {
	m := NewManager(downDrafts{}, zerolog.Nop())
	sess := m.Session(context.Background(), &models.User{
		ID:    9,
		Name:  "Karim Ahmed",
		Phone: "01898765432",
	})

	assert.Equal(t, "Karim Ahmed", sess.Contact.Name)
	assert.Equal(t, "01898765432", sess.Contact.Phone)
	assert.Equal(t, models.PaymentMethodCOD, sess.PaymentMethod)
	assert.Equal(t, StatusIdle, sess.Status())
}

func TestResetIfCartEmpty(t *testing.T) {
	m := NewManager(draft.NewMemoryStore(), zerolog.Nop())
	sess := m.Session(context.Background(), &models.User{ID: 4})
	sess.Selection = address.State{SelectedDistrict: "dhaka", SelectedCity: "mirpur"}
	applied := coupon.Coupon{Code: "SAVE10"}
	sess.Coupon = coupon.State{EnteredCode: "SAVE10", Discount: 50, Applied: &applied}

	// Lines remain: state untouched.
	m.ResetIfCartEmpty(4, 2)
	assert.Equal(t, "dhaka", sess.Selection.SelectedDistrict)
	assert.NotNil(t, sess.Coupon.Applied)

	// Cart emptied: selection and coupon cleared.
	m.ResetIfCartEmpty(4, 0)
	assert.Equal(t, address.State{}, sess.Selection)
	assert.Equal(t, coupon.State{}, sess.Coupon)

	// Unknown customer is a no-op.
	m.ResetIfCartEmpty(99, 0)
}

func TestManagerReturnsSameSession(t *testing.T) {
	m := NewManager(draft.NewMemoryStore(), zerolog.Nop())
	user := &models.User{ID: 5}

	first := m.Session(context.Background(), user)
	first.Donation = 20

	second := m.Session(context.Background(), user)
	assert.Same(t, first, second)
	assert.Equal(t, float64(20), second.Donation)

	m.Drop(5)
	third := m.Session(context.Background(), user)
	assert.NotSame(t, first, third)
}

func TestResetCheckoutStateKeepsContact(t *testing.T) {
	sess := committedSession()
	applied := coupon.Coupon{Code: "SAVE10"}
	sess.Coupon = coupon.State{EnteredCode: "SAVE10", Discount: 50, Applied: &applied}

	sess.ResetCheckoutState()

	assert.Equal(t, address.State{}, sess.Selection)
	assert.Equal(t, coupon.State{}, sess.Coupon)
	assert.Equal(t, "Rahim Uddin", sess.Contact.Name)
	assert.Equal(t, models.PaymentMethodCOD, sess.PaymentMethod)
}
