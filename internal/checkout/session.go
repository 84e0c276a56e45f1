package checkout

import (
	"context"
	"sync"

	"storefront-app/internal/address"
	"storefront-app/internal/coupon"
	"storefront-app/internal/draft"
	"storefront-app/internal/models"

	"github.com/rs/zerolog"
)

// Status is the submission state machine position. Failed is transient: the
// session accepts a new submission immediately after a failure.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

type Contact struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	DetailedAddress string `json:"detailed_address"`
}

// Session holds one customer's checkout state for the life of the checkout:
// the drill-down address selection, the coupon state, contact fields and
// donation. Selection and coupon state reset when the cart empties or an
// order is placed.
//
// The form fields (Contact, PaymentMethod, Donation, Selection, Coupon) are
// written only from the owning customer's request handling, one request at a
// time. mu guards the submission slot and status, the only fields a
// concurrent submission attempt touches.
type Session struct {
	mu sync.Mutex

	UserID        uint
	Contact       Contact
	PaymentMethod string
	Donation      float64
	Selection     address.State
	Coupon        coupon.State

	status   Status
	inFlight bool
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == "" {
		return StatusIdle
	}
	return s.status
}

// beginSubmit claims the single submission slot. It runs synchronously
// before any network suspension point.
func (s *Session) beginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// endSubmit releases the slot on every exit path from a submission.
func (s *Session) endSubmit(final Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.status = final
}

func (s *Session) setStatus(st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = st
}

// ResetCheckoutState clears selection and coupon state, keeping contact
// fields for the next session.
func (s *Session) ResetCheckoutState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Selection = address.State{}
	s.Coupon = coupon.State{}
}

// Manager owns the live checkout sessions, one per customer.
type Manager struct {
	mu       sync.Mutex
	sessions map[uint]*Session
	drafts   draft.Store
	log      zerolog.Logger
}

func NewManager(drafts draft.Store, log zerolog.Logger) *Manager {
	return &Manager{sessions: make(map[uint]*Session), drafts: drafts, log: log}
}

// Session returns the customer's live session, creating and seeding it on
// first access. The stored draft snapshot seeds the contact fields first;
// profile values take precedence where present.
func (m *Manager) Session(ctx context.Context, user *models.User) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[user.ID]; ok {
		return sess
	}

	sess := &Session{
		UserID:        user.ID,
		PaymentMethod: models.PaymentMethodCOD,
		status:        StatusIdle,
	}

	snap, ok, err := m.drafts.Get(ctx, user.ID)
	if err != nil {
		m.log.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to load checkout draft")
	}
	if err == nil && ok {
		sess.Contact = Contact{
			Name:            snap.Name,
			Phone:           snap.Phone,
			Email:           snap.Email,
			DetailedAddress: snap.DetailedAddress,
		}
		if snap.PaymentMethod != "" {
			sess.PaymentMethod = snap.PaymentMethod
		}
		sess.Selection = address.State{
			SelectedDistrict: snap.District,
			SelectedCity:     snap.City,
		}
	}

	if user.Name != "" {
		sess.Contact.Name = user.Name
	}
	if user.Phone != "" {
		sess.Contact.Phone = user.Phone
	}
	if user.Email != "" {
		sess.Contact.Email = user.Email
	}
	if user.DetailedAddress != "" {
		sess.Contact.DetailedAddress = user.DetailedAddress
	}

	m.sessions[user.ID] = sess
	return sess
}

// ResetIfCartEmpty clears selection and coupon state once the customer's
// cart has no lines left. A customer without a live session needs nothing.
func (m *Manager) ResetIfCartEmpty(userID uint, remaining int) {
	if remaining > 0 {
		return
	}
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	m.mu.Unlock()
	if ok {
		sess.ResetCheckoutState()
	}
}

// Drop ends a customer's session, e.g. after successful placement hands off
// to the confirmation surface.
func (m *Manager) Drop(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
