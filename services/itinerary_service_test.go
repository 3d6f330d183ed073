package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryService_EditAndSubmit(t *testing.T) {
	store := seededStore()
	drafts := newFakeDraftStore()
	service := NewItineraryService(store, drafts)
	ctx := context.Background()

	draft, err := service.OpenDraft(ctx, "ebc")
	require.NoError(t, err)
	require.Len(t, draft.Days, 2)

	draft, err = service.ApplyEdits(ctx, draft.ID, []models.ItineraryEdit{
		{Op: EditInsert, Day: &models.ItineraryDay{Title: "Tengboche", Altitude: 3867}},
		{Op: EditMove, DayID: "d2", To: 2},
		{Op: EditUpdate, Index: intPtr(0), Field: FieldMeals, Value: []interface{}{"Lunch"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fly to Lukla", "Tengboche", "Namche Bazaar"}, titles(draft.Days))

	// stored trek is untouched until submit
	trek, _ := store.GetTrekByID(ctx, "ebc")
	assert.Len(t, trek.Itinerary, 2)

	submitted, err := service.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assertContiguous(t, submitted.Days)

	trek, _ = store.GetTrekByID(ctx, "ebc")
	assert.Equal(t, []string{"Fly to Lukla", "Tengboche", "Namche Bazaar"}, titles(trek.Itinerary))
	assert.Equal(t, []string{"Lunch"}, trek.Itinerary[0].Meals)
	assert.False(t, drafts.has(draftKindItinerary, draft.ID))
}

func TestItineraryService_FailedEditLeavesDraft(t *testing.T) {
	service := NewItineraryService(seededStore(), newFakeDraftStore())
	ctx := context.Background()

	draft, err := service.OpenDraft(ctx, "ebc")
	require.NoError(t, err)

	_, err = service.ApplyEdits(ctx, draft.ID, []models.ItineraryEdit{
		{Op: EditRemove, Index: intPtr(0)},
		{Op: EditRemove, Index: intPtr(5)},
	})
	assert.True(t, errors.Is(err, utils.ErrInvalidArgument))

	current, err := service.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Len(t, current.Days, 2)
}

func TestItineraryService_Discard(t *testing.T) {
	service := NewItineraryService(seededStore(), newFakeDraftStore())
	ctx := context.Background()

	draft, err := service.OpenDraft(ctx, "ebc")
	require.NoError(t, err)
	require.NoError(t, service.Discard(ctx, draft.ID))

	_, err = service.GetDraft(ctx, draft.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	_, err = service.Submit(ctx, draft.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestItineraryService_UnknownTrek(t *testing.T) {
	service := NewItineraryService(seededStore(), newFakeDraftStore())

	_, err := service.OpenDraft(context.Background(), "k2")

	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
