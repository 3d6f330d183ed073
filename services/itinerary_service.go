package services

import (
	"context"
	"time"

	"github.com/fadhlanhapp/trekshare-backend/logger"
	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
)

const draftKindItinerary = "itinerary"

// DraftRepository keeps drafts between requests
type DraftRepository interface {
	Save(ctx context.Context, kind, id string, value interface{}) error
	Load(ctx context.Context, kind, id string, dest interface{}) error
	Delete(ctx context.Context, kind, id string) error
	// Claim marks a draft as taken by owner unless someone else already holds it.
	// It returns the current holder and whether this call took the claim.
	Claim(ctx context.Context, kind, id, owner string) (string, bool, error)
	Release(ctx context.Context, kind, id string) error
}

// ItineraryWriter loads a trek and replaces its itinerary
type ItineraryWriter interface {
	TrekReader
	UpdateItinerary(ctx context.Context, trekID string, days []models.ItineraryDay) error
}

// ItineraryService runs editor sessions against drafts
type ItineraryService struct {
	treks  ItineraryWriter
	drafts DraftRepository
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(treks ItineraryWriter, drafts DraftRepository) *ItineraryService {
	return &ItineraryService{treks: treks, drafts: drafts}
}

// OpenDraft starts an editing session from the trek's stored itinerary
func (s *ItineraryService) OpenDraft(ctx context.Context, trekID string) (*models.ItineraryDraft, error) {
	trek, err := s.treks.GetTrekByID(ctx, trekID)
	if err != nil {
		return nil, err
	}

	draft := &models.ItineraryDraft{
		ID:        utils.GenerateID(),
		TrekID:    trek.ID,
		Days:      NewItineraryEditor(trek.Itinerary).Days(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.drafts.Save(ctx, draftKindItinerary, draft.ID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns the current state of an editing session
func (s *ItineraryService) GetDraft(ctx context.Context, draftID string) (*models.ItineraryDraft, error) {
	var draft models.ItineraryDraft
	if err := s.drafts.Load(ctx, draftKindItinerary, draftID, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// ApplyEdits runs edits in order; if any fails the draft is left unchanged
func (s *ItineraryService) ApplyEdits(ctx context.Context, draftID string, edits []models.ItineraryEdit) (*models.ItineraryDraft, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	editor := NewItineraryEditor(draft.Days)
	for _, edit := range edits {
		if err := editor.Apply(edit); err != nil {
			return nil, err
		}
	}

	draft.Days = editor.Days()
	draft.UpdatedAt = time.Now().UTC()
	if err := s.drafts.Save(ctx, draftKindItinerary, draft.ID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Submit writes the draft to its trek and closes the session
func (s *ItineraryService) Submit(ctx context.Context, draftID string) (*models.ItineraryDraft, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	days := NewItineraryEditor(draft.Days).Days()
	if err := s.treks.UpdateItinerary(ctx, draft.TrekID, days); err != nil {
		return nil, err
	}
	if err := s.drafts.Delete(ctx, draftKindItinerary, draftID); err != nil {
		logger.WithFields(logger.Fields{"draft_id": draftID, "error": err}).Warn("Failed to delete submitted itinerary draft")
	}

	logger.WithFields(logger.Fields{"trek_id": draft.TrekID, "days": len(days)}).Info("Itinerary submitted")
	draft.Days = days
	return draft, nil
}

// Discard drops an editing session without saving
func (s *ItineraryService) Discard(ctx context.Context, draftID string) error {
	return s.drafts.Delete(ctx, draftKindItinerary, draftID)
}
