package models

import "time"

// BookingForm collects the fields across the join wizard's steps
type BookingForm struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Nationality      string `json:"nationality"`
	EmergencyContact string `json:"emergencyContact"`
	GroupPreference  string `json:"groupPreference"`
	GroupSize        int    `json:"groupSize"`
	PaymentOption    string `json:"paymentOption"`
	SpecialRequests  string `json:"specialRequests"`
}

// BookingFormPatch carries the fields a client wants to change
type BookingFormPatch struct {
	FullName         *string `json:"fullName"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Nationality      *string `json:"nationality"`
	EmergencyContact *string `json:"emergencyContact"`
	GroupPreference  *string `json:"groupPreference"`
	GroupSize        *int    `json:"groupSize"`
	PaymentOption    *string `json:"paymentOption"`
	SpecialRequests  *string `json:"specialRequests"`
}

// BookingDraft is a wizard in progress
type BookingDraft struct {
	ID        string          `json:"id"`
	TrekID    string          `json:"trekId"`
	Step      string          `json:"step"`
	Form      BookingForm     `json:"form"`
	Quote     *GroupCostQuote `json:"quote,omitempty"`
	BookingID string          `json:"bookingId,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// StartBookingRequest request model
type StartBookingRequest struct {
	TrekID string `json:"trekId" binding:"required"`
}
