// models/models.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money goes over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Region represents a trekking region such as Khumbu or Annapurna
type Region struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Country      string    `json:"country"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	HighestPoint int       `json:"highestPoint"`
	BestSeason   string    `json:"bestSeason"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TrekRoute is a trek template offered in a region
type TrekRoute struct {
	ID             string          `json:"id"`
	RegionID       string          `json:"regionId"`
	Name           string          `json:"name"`
	Summary        string          `json:"summary"`
	Difficulty     string          `json:"difficulty"`
	DurationDays   int             `json:"durationDays"`
	MaxAltitude    int             `json:"maxAltitude"`
	MinGroupSize   int             `json:"minGroupSize"`
	MaxGroupSize   int             `json:"maxGroupSize"`
	ReferencePrice decimal.Decimal `json:"referencePrice"`
	Currency       string          `json:"currency"`
	CostComponents []CostComponent `json:"costComponents"`
	Itinerary      []ItineraryDay  `json:"itinerary"`
	CoverImage     string          `json:"coverImage,omitempty"`
	CoverThumbnail string          `json:"coverThumbnail,omitempty"`
	Gallery        []string        `json:"gallery"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Guide is a guide listed for a region
type Guide struct {
	ID              string          `json:"id"`
	RegionID        string          `json:"regionId"`
	Name            string          `json:"name"`
	Languages       []string        `json:"languages"`
	YearsExperience int             `json:"yearsExperience"`
	Rating          float64         `json:"rating"`
	Verified        bool            `json:"verified"`
	DailyRate       decimal.Decimal `json:"dailyRate"`
}

// Booking is a submitted join request for a trek
type Booking struct {
	ID              string          `json:"id"`
	TrekID          string          `json:"trekId"`
	FullName        string          `json:"fullName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	Nationality     string          `json:"nationality,omitempty"`
	GroupPreference string          `json:"groupPreference"`
	GroupSize       int             `json:"groupSize"`
	PaymentOption   string          `json:"paymentOption"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	PerPersonTotal  decimal.Decimal `json:"perPersonTotal"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Session is the caller's authentication state as carried by the request
type Session struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
	Role          string `json:"role,omitempty"`
}

// NavigationDecision tells the client whether to stay or go elsewhere
type NavigationDecision struct {
	Redirect bool   `json:"redirect"`
	Location string `json:"location,omitempty"`
}

// TrekTemplateRequest is the `data` blob of the template create/update form
type TrekTemplateRequest struct {
	RegionID       string          `json:"regionId"`
	Name           string          `json:"name"`
	Summary        string          `json:"summary"`
	Difficulty     string          `json:"difficulty"`
	DurationDays   int             `json:"durationDays"`
	MaxAltitude    int             `json:"maxAltitude"`
	MinGroupSize   int             `json:"minGroupSize"`
	MaxGroupSize   int             `json:"maxGroupSize"`
	ReferencePrice decimal.Decimal `json:"referencePrice"`
	Currency       string          `json:"currency"`
	Pricing        *TrekPricing    `json:"pricing,omitempty"`
	CostComponents []CostComponent `json:"costComponents"`
	Itinerary      []ItineraryDay  `json:"itinerary"`
	Gallery        []string        `json:"gallery"`
}

// TemplateMedia lists stored images that came with a template form
type TemplateMedia struct {
	CoverImage     string
	CoverThumbnail string
	Gallery        []string
}
