package utils

const (
	// Cost allocation kinds
	AllocationPerPersonFixed = "per_person_fixed"
	AllocationGroupShared    = "group_shared"

	// Booking wizard steps
	StepPersonalInfo    = "personal_info"
	StepGroupPreference = "group_preference"
	StepReview          = "review"
	StepPayment         = "payment"
	StepSubmitted       = "submitted"

	// Booking statuses
	BookingStatusPendingPayment = "pending_payment"

	// Group preferences offered in the join flow
	GroupPreferenceJoin    = "join_group"
	GroupPreferencePrivate = "private"

	// Payment options
	PaymentOptionFull    = "full"
	PaymentOptionDeposit = "deposit"

	// HTTP status messages
	ErrInvalidRequest  = "Invalid request"
	ErrDraftNotFound   = "Draft not found or expired"
	ErrFailedToStore   = "Failed to store data"
	ErrTooManyRequests = "Too many requests, please slow down"

	// Currency minor unit for presentation
	MoneyPlaces = 2

	DefaultCurrency = "USD"
)
