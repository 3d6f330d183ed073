package handlers_test

import (
	"context"
	"sort"
	"sync"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/services"
	"github.com/fadhlanhapp/trekshare-backend/utils"
	"github.com/shopspring/decimal"
)

// memStore serves regions, treks, guides and bookings from memory
type memStore struct {
	mu       sync.Mutex
	regions  map[string]models.Region
	treks    map[string]models.TrekRoute
	guides   []models.Guide
	bookings map[string]models.Booking
}

func newMemStore() *memStore {
	s := &memStore{
		regions:  map[string]models.Region{},
		treks:    map[string]models.TrekRoute{},
		bookings: map[string]models.Booking{},
	}
	s.regions["khumbu"] = models.Region{ID: "khumbu", Name: "Khumbu", Country: "Nepal"}
	s.regions["annapurna"] = models.Region{ID: "annapurna", Name: "Annapurna", Country: "Nepal"}
	s.treks["ebc"] = models.TrekRoute{
		ID:             "ebc",
		RegionID:       "khumbu",
		Name:           "Everest Base Camp",
		DurationDays:   14,
		MinGroupSize:   1,
		MaxGroupSize:   8,
		ReferencePrice: decimal.RequireFromString("1050"),
		Currency:       "USD",
		CostComponents: services.StandardCostSheet(everestPricing()),
		Itinerary: []models.ItineraryDay{
			{ID: "d1", Day: 1, Title: "Fly to Lukla", Meals: []string{}, Highlights: []string{}},
			{ID: "d2", Day: 2, Title: "Namche Bazaar", Meals: []string{}, Highlights: []string{}},
		},
		Gallery: []string{},
	}
	s.guides = []models.Guide{
		{ID: "g1", RegionID: "khumbu", Name: "Mingma", Verified: true, Languages: []string{"en", "ne"}},
		{ID: "g2", RegionID: "khumbu", Name: "Unverified", Verified: false, Languages: []string{}},
		{ID: "g3", RegionID: "annapurna", Name: "Sita", Verified: true, Languages: []string{"en"}},
	}
	return s
}

func everestPricing() models.TrekPricing {
	d := decimal.RequireFromString
	return models.TrekPricing{
		GuideDailyRate:         d("40"),
		AccommodationDailyRate: d("30"),
		MealsDailyRate:         d("25"),
		Insurance:              d("10"),
		Transport:              d("56.67"),
		VAT:                    d("14.08"),
		Permits:                d("65"),
		PlatformFee:            d("25"),
	}
}

func (s *memStore) ListRegions(ctx context.Context) ([]models.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Region{}
	for _, r := range s.regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) GetRegionByID(ctx context.Context, id string) (*models.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.regions[id]
	if !ok {
		return nil, utils.NewNotFoundError("Region")
	}
	return &r, nil
}

func (s *memStore) ListTreks(ctx context.Context, regionID string) ([]models.TrekRoute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.TrekRoute{}
	for _, t := range s.treks {
		if regionID == "" || t.RegionID == regionID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) GetTrekByID(ctx context.Context, id string) (*models.TrekRoute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.treks[id]
	if !ok {
		return nil, utils.NewNotFoundError("Trek")
	}
	return &t, nil
}

func (s *memStore) StoreTrek(ctx context.Context, trek *models.TrekRoute) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.treks[trek.ID] = *trek
	return nil
}

func (s *memStore) UpdateTrek(ctx context.Context, trek *models.TrekRoute) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.treks[trek.ID]; !ok {
		return utils.NewNotFoundError("Trek")
	}
	s.treks[trek.ID] = *trek
	return nil
}

func (s *memStore) UpdateItinerary(ctx context.Context, trekID string, days []models.ItineraryDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.treks[trekID]
	if !ok {
		return utils.NewNotFoundError("Trek")
	}
	t.Itinerary = days
	s.treks[trekID] = t
	return nil
}

func (s *memStore) ListVerifiedGuides(ctx context.Context, regionID string) ([]models.Guide, error) {
	out := []models.Guide{}
	for _, g := range s.guides {
		if g.Verified && (regionID == "" || g.RegionID == regionID) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *memStore) StoreBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *memStore) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, utils.NewNotFoundError("Booking")
	}
	return &b, nil
}
