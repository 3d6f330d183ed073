package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
)

// BookingRepository handles booking data operations
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(conn *sql.DB) *BookingRepository {
	return &BookingRepository{db: conn}
}

// StoreBooking creates a new booking record
func (r *BookingRepository) StoreBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, trek_id, full_name, email, phone, nationality, group_preference,
			group_size, payment_option, special_requests, per_person_total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query, booking.ID, booking.TrekID, booking.FullName, booking.Email,
		booking.Phone, booking.Nationality, booking.GroupPreference, booking.GroupSize,
		booking.PaymentOption, booking.SpecialRequests, booking.PerPersonTotal, booking.Status,
		booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by its ID
func (r *BookingRepository) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	query := `
		SELECT id, trek_id, full_name, email, phone, nationality, group_preference, group_size,
			payment_option, special_requests, per_person_total, status, created_at
		FROM bookings
		WHERE id = $1
	`
	var booking models.Booking
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID, &booking.TrekID, &booking.FullName, &booking.Email, &booking.Phone,
		&booking.Nationality, &booking.GroupPreference, &booking.GroupSize, &booking.PaymentOption,
		&booking.SpecialRequests, &booking.PerPersonTotal, &booking.Status, &booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Booking")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}
