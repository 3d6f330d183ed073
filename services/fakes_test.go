package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
)

type fakeTrekStore struct {
	mu      sync.Mutex
	regions map[string]*models.Region
	treks   map[string]*models.TrekRoute
	guides  []models.Guide
}

func newFakeTrekStore() *fakeTrekStore {
	return &fakeTrekStore{
		regions: map[string]*models.Region{},
		treks:   map[string]*models.TrekRoute{},
	}
}

func (f *fakeTrekStore) ListRegions(ctx context.Context) ([]models.Region, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Region{}
	for _, r := range f.regions {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeTrekStore) GetRegionByID(ctx context.Context, id string) (*models.Region, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.regions[id]
	if !ok {
		return nil, utils.NewNotFoundError("Region")
	}
	copied := *r
	return &copied, nil
}

func (f *fakeTrekStore) ListTreks(ctx context.Context, regionID string) ([]models.TrekRoute, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.TrekRoute{}
	for _, t := range f.treks {
		if regionID == "" || t.RegionID == regionID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeTrekStore) GetTrekByID(ctx context.Context, id string) (*models.TrekRoute, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.treks[id]
	if !ok {
		return nil, utils.NewNotFoundError("Trek")
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTrekStore) StoreTrek(ctx context.Context, trek *models.TrekRoute) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *trek
	f.treks[trek.ID] = &copied
	return nil
}

func (f *fakeTrekStore) UpdateTrek(ctx context.Context, trek *models.TrekRoute) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.treks[trek.ID]; !ok {
		return utils.NewNotFoundError("Trek")
	}
	copied := *trek
	f.treks[trek.ID] = &copied
	return nil
}

func (f *fakeTrekStore) UpdateItinerary(ctx context.Context, trekID string, days []models.ItineraryDay) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.treks[trekID]
	if !ok {
		return utils.NewNotFoundError("Trek")
	}
	t.Itinerary = days
	return nil
}

func (f *fakeTrekStore) ListVerifiedGuides(ctx context.Context, regionID string) ([]models.Guide, error) {
	out := []models.Guide{}
	for _, g := range f.guides {
		if g.Verified && (regionID == "" || g.RegionID == regionID) {
			out = append(out, g)
		}
	}
	return out, nil
}

// fakeDraftStore round-trips drafts through JSON like the Redis store does
type fakeDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
	claims map[string]string
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: map[string][]byte{}, claims: map[string]string{}}
}

func (f *fakeDraftStore) Save(ctx context.Context, kind, id string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts[kind+":"+id] = payload
	return nil
}

func (f *fakeDraftStore) Load(ctx context.Context, kind, id string, dest interface{}) error {
	f.mu.Lock()
	payload, ok := f.drafts[kind+":"+id]
	f.mu.Unlock()
	if !ok {
		return utils.NewDraftExpiredError()
	}
	return json.Unmarshal(payload, dest)
}

func (f *fakeDraftStore) Delete(ctx context.Context, kind, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.drafts, kind+":"+id)
	return nil
}

func (f *fakeDraftStore) Claim(ctx context.Context, kind, id, owner string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if holder, ok := f.claims[kind+":"+id]; ok {
		return holder, false, nil
	}
	f.claims[kind+":"+id] = owner
	return owner, true, nil
}

func (f *fakeDraftStore) Release(ctx context.Context, kind, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.claims, kind+":"+id)
	return nil
}

func (f *fakeDraftStore) has(kind, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.drafts[kind+":"+id]
	return ok
}

type fakeBookingStore struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	storeErr error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingStore) StoreBooking(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.storeErr != nil {
		return f.storeErr
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func (f *fakeBookingStore) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, utils.NewNotFoundError("Booking")
	}
	copied := *b
	return &copied, nil
}

// seededStore holds the Khumbu region and the 14-day base camp trek
func seededStore() *fakeTrekStore {
	store := newFakeTrekStore()
	store.regions["khumbu"] = &models.Region{ID: "khumbu", Name: "Khumbu", Country: "Nepal"}
	store.treks["ebc"] = &models.TrekRoute{
		ID:             "ebc",
		RegionID:       "khumbu",
		Name:           "Everest Base Camp",
		DurationDays:   14,
		MinGroupSize:   1,
		MaxGroupSize:   8,
		ReferencePrice: dec("1050"),
		Currency:       "USD",
		CostComponents: StandardCostSheet(everestPricing()),
		Itinerary: []models.ItineraryDay{
			{ID: "d1", Day: 1, Title: "Fly to Lukla", Meals: []string{}, Highlights: []string{}},
			{ID: "d2", Day: 2, Title: "Namche Bazaar", Meals: []string{}, Highlights: []string{}},
		},
		Gallery: []string{},
	}
	return store
}

// slowTrekStore delays trek reads by about one database round trip
type slowTrekStore struct {
	*fakeTrekStore
	delay time.Duration
}

func (s slowTrekStore) GetTrekByID(ctx context.Context, id string) (*models.TrekRoute, error) {
	time.Sleep(s.delay)
	return s.fakeTrekStore.GetTrekByID(ctx, id)
}

// submitSaveFailingStore rejects saving a draft once it reaches the submitted step
type submitSaveFailingStore struct {
	*fakeDraftStore
	failing bool
}

func (s *submitSaveFailingStore) Save(ctx context.Context, kind, id string, value interface{}) error {
	if draft, ok := value.(*models.BookingDraft); ok && s.failing && draft.Step == utils.StepSubmitted {
		return errors.New("redis: connection reset")
	}
	return s.fakeDraftStore.Save(ctx, kind, id, value)
}
