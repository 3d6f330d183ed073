package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadhlanhapp/trekshare-backend/logger"
	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
)

const draftKindBooking = "booking"

// BookingStore persists submitted bookings
type BookingStore interface {
	StoreBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)
}

// BookingService drives join wizards kept as drafts
type BookingService struct {
	treks    TrekReader
	bookings BookingStore
	drafts   DraftRepository
}

// NewBookingService creates a new booking service
func NewBookingService(treks TrekReader, bookings BookingStore, drafts DraftRepository) *BookingService {
	return &BookingService{treks: treks, bookings: bookings, drafts: drafts}
}

// Start opens a wizard for a trek
func (s *BookingService) Start(ctx context.Context, trekID string) (*models.BookingDraft, error) {
	trek, err := s.treks.GetTrekByID(ctx, trekID)
	if err != nil {
		return nil, err
	}

	wizard := NewBookingWizard()
	if trek.MinGroupSize > 0 {
		wizard.Form.GroupSize = trek.MinGroupSize
	}

	draft := &models.BookingDraft{
		ID:     utils.GenerateID(),
		TrekID: trek.ID,
	}
	return s.save(ctx, draft, wizard)
}

// Get returns a wizard's current state
func (s *BookingService) Get(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	var draft models.BookingDraft
	if err := s.drafts.Load(ctx, draftKindBooking, draftID, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// UpdateForm merges form fields into the wizard
func (s *BookingService) UpdateForm(ctx context.Context, draftID string, patch models.BookingFormPatch) (*models.BookingDraft, error) {
	draft, wizard, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := wizard.ApplyPatch(patch); err != nil {
		return nil, err
	}
	if draft.Quote != nil && draft.Quote.GroupSize != wizard.Form.GroupSize {
		draft.Quote = nil
	}
	return s.save(ctx, draft, wizard)
}

// Next advances the wizard; reaching review attaches a quote for the chosen group size
func (s *BookingService) Next(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	draft, wizard, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := wizard.Next(); err != nil {
		return nil, err
	}

	if wizard.Step == utils.StepReview {
		quote, err := s.quote(ctx, draft.TrekID, wizard.Form.GroupSize)
		if err != nil {
			return nil, err
		}
		draft.Quote = quote
	}
	return s.save(ctx, draft, wizard)
}

// Back moves the wizard one step back
func (s *BookingService) Back(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	draft, wizard, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := wizard.Back(); err != nil {
		return nil, err
	}
	return s.save(ctx, draft, wizard)
}

// Submit records the booking; payment is collected elsewhere.
// The draft is claimed before the booking is stored, so a repeated or concurrent
// submit of the same draft never stores a second booking.
func (s *BookingService) Submit(ctx context.Context, draftID string) (*models.Booking, error) {
	draft, wizard, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	// Only the in-memory copy moves; the draft is saved after the booking is stored
	if err := wizard.Submit(); err != nil {
		return nil, err
	}

	trek, err := s.treks.GetTrekByID(ctx, draft.TrekID)
	if err != nil {
		return nil, err
	}
	if trek.MaxGroupSize > 0 && wizard.Form.GroupSize > trek.MaxGroupSize {
		return nil, utils.NewValidationError(fmt.Sprintf("group size %d exceeds the trek maximum of %d",
			wizard.Form.GroupSize, trek.MaxGroupSize))
	}
	quote, err := ComputeQuote(trek.DurationDays, trek.CostComponents, wizard.Form.GroupSize, trek.ReferencePrice)
	if err != nil {
		return nil, err
	}

	bookingID := utils.GenerateID()
	holder, claimed, err := s.drafts.Claim(ctx, draftKindBooking, draftID, bookingID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return s.resumeSubmitted(ctx, draft, wizard, holder)
	}

	booking := &models.Booking{
		ID:              bookingID,
		TrekID:          trek.ID,
		FullName:        wizard.Form.FullName,
		Email:           wizard.Form.Email,
		Phone:           wizard.Form.Phone,
		Nationality:     wizard.Form.Nationality,
		GroupPreference: wizard.Form.GroupPreference,
		GroupSize:       wizard.Form.GroupSize,
		PaymentOption:   wizard.Form.PaymentOption,
		SpecialRequests: wizard.Form.SpecialRequests,
		PerPersonTotal:  quote.PerPersonTotal,
		Status:          utils.BookingStatusPendingPayment,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.bookings.StoreBooking(ctx, booking); err != nil {
		if rerr := s.drafts.Release(ctx, draftKindBooking, draftID); rerr != nil {
			logger.WithFields(logger.Fields{"draft_id": draftID, "error": rerr}).Warn("Failed to release booking draft claim")
		}
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	draft.Quote = quote
	draft.BookingID = booking.ID
	if _, err := s.save(ctx, draft, wizard); err != nil {
		// The claim still names the booking, so a retry returns it
		logger.WithFields(logger.Fields{"draft_id": draftID, "error": err}).Warn("Failed to save submitted booking draft")
	}

	logger.WithFields(logger.Fields{
		"booking_id": booking.ID,
		"trek_id":    trek.ID,
		"group_size": booking.GroupSize,
	}).Info("Booking submitted")
	return booking, nil
}

// resumeSubmitted handles a submit that lost the claim to an earlier one.
// A stored booking is returned and the draft caught up; otherwise the earlier submit is still running.
func (s *BookingService) resumeSubmitted(ctx context.Context, draft *models.BookingDraft, wizard *BookingWizard, bookingID string) (*models.Booking, error) {
	booking, err := s.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NewTransitionError("booking is already being submitted")
		}
		return nil, err
	}

	draft.BookingID = booking.ID
	if _, err := s.save(ctx, draft, wizard); err != nil {
		logger.WithFields(logger.Fields{"draft_id": draft.ID, "error": err}).Warn("Failed to save submitted booking draft")
	}
	return booking, nil
}

// GetBooking returns a submitted booking
func (s *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.bookings.GetBookingByID(ctx, id)
}

func (s *BookingService) quote(ctx context.Context, trekID string, groupSize int) (*models.GroupCostQuote, error) {
	trek, err := s.treks.GetTrekByID(ctx, trekID)
	if err != nil {
		return nil, err
	}
	return ComputeQuote(trek.DurationDays, trek.CostComponents, groupSize, trek.ReferencePrice)
}

func (s *BookingService) load(ctx context.Context, draftID string) (*models.BookingDraft, *BookingWizard, error) {
	draft, err := s.Get(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	wizard, err := RestoreBookingWizard(draft)
	if err != nil {
		return nil, nil, err
	}
	return draft, wizard, nil
}

func (s *BookingService) save(ctx context.Context, draft *models.BookingDraft, wizard *BookingWizard) (*models.BookingDraft, error) {
	draft.Step = wizard.Step
	draft.Form = wizard.Form
	draft.UpdatedAt = time.Now().UTC()
	if err := s.drafts.Save(ctx, draftKindBooking, draft.ID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}
