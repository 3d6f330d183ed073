package models

import "time"

// ItineraryDay is one day of a trek itinerary
type ItineraryDay struct {
	ID            string   `json:"id"`
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Altitude      int      `json:"altitude"`
	Distance      float64  `json:"distance"`
	Duration      string   `json:"duration"`
	Accommodation string   `json:"accommodation"`
	Meals         []string `json:"meals"`
	Highlights    []string `json:"highlights"`
}

// ItineraryDraft is an in-progress edit of a trek's itinerary
type ItineraryDraft struct {
	ID        string         `json:"id"`
	TrekID    string         `json:"trekId"`
	Days      []ItineraryDay `json:"days"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ItineraryEdit is a single editor operation sent by the client
type ItineraryEdit struct {
	Op    string        `json:"op" binding:"required"`
	Index *int          `json:"index,omitempty"`
	From  int           `json:"from"`
	To    int           `json:"to"`
	DayID string        `json:"dayId,omitempty"`
	Field string        `json:"field,omitempty"`
	Value interface{}   `json:"value,omitempty"`
	Day   *ItineraryDay `json:"day,omitempty"`
}

// ApplyEditsRequest request model for a batch of editor operations
type ApplyEditsRequest struct {
	Edits []ItineraryEdit `json:"edits" binding:"required,dive"`
}
