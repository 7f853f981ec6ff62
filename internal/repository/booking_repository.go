package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/pkg/database"
)

// bookingRepository implements BookingRepository interface
type bookingRepository struct {
	db *database.Postgres
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *database.Postgres) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, user_id, service_type, pickup_location, destination, pickup_time,
	estimated_price, currency, status, security_level, payment_intent_id, created_at, updated_at`

// Create creates a new booking record
func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, service_type, pickup_location, destination, pickup_time,
			estimated_price, currency, status, security_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	if booking.UpdatedAt.IsZero() {
		booking.UpdatedAt = now
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ServiceType,
		booking.PickupLocation,
		booking.Destination,
		booking.PickupTime,
		booking.EstimatedPrice,
		booking.Currency,
		booking.Status,
		booking.SecurityLevel,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	booking := &domain.Booking{}
	var paymentIntentID sql.NullString

	err := scan(
		&booking.ID,
		&booking.UserID,
		&booking.ServiceType,
		&booking.PickupLocation,
		&booking.Destination,
		&booking.PickupTime,
		&booking.EstimatedPrice,
		&booking.Currency,
		&booking.Status,
		&booking.SecurityLevel,
		&paymentIntentID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentIntentID.Valid {
		booking.PaymentIntentID = &paymentIntentID.String
	}

	return booking, nil
}

// GetByID retrieves a booking by ID
func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row := r.db.DB.QueryRowContext(ctx, query, id)
	booking, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking by id: %w", err)
	}

	return booking, nil
}

func (f BookingFilter) where() (string, []any) {
	clause := "WHERE 1=1"
	args := []any{}

	if f.UserID != "" {
		args = append(args, f.UserID)
		clause += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		clause += fmt.Sprintf(" AND status = $%d", len(args))
	}

	return clause, args
}

// List retrieves bookings matching the filter, newest first
func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error) {
	clause, args := filter.where()

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`SELECT %s FROM bookings %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, clause, limitPos, offsetPos)

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}

// Count counts bookings matching the filter
func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int, error) {
	clause, args := filter.where()
	query := `SELECT COUNT(*) FROM bookings ` + clause

	var count int
	if err := r.db.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

// UpdateStatus updates a booking's status and, when provided, its payment
// intent reference
func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentIntentID *string) error {
	query := `
		UPDATE bookings
		SET status = $2, payment_intent_id = COALESCE($3, payment_intent_id), updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query, id, status, paymentIntentID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("booking with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}
