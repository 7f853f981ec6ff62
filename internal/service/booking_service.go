package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/internal/dto"
	"github.com/secureride/booking-service/internal/repository"
)

// defaultPickupLead is applied when a booking request omits the pickup time.
const defaultPickupLead = 24 * time.Hour

// bookingService implements BookingService interface
type bookingService struct {
	bookingRepo repository.BookingRepository
	currency    string
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo repository.BookingRepository, currency string) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		currency:    currency,
	}
}

// CreateBooking creates a booking for the authenticated caller, applying
// defaults for any optional fields left unset
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*domain.Booking, error) {
	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = domain.DefaultServiceType
	}

	securityLevel := domain.SecurityLevel(req.SecurityLevel)
	if securityLevel == "" {
		securityLevel = domain.SecurityLevelStandard
	}
	if !securityLevel.Valid() {
		return nil, NewValidationError("security_level", "unknown security level")
	}

	pickupTime := time.Now().UTC().Add(defaultPickupLead)
	if req.PickupTime != nil {
		parsed, err := time.Parse(time.RFC3339, *req.PickupTime)
		if err != nil {
			return nil, NewValidationError("pickup_time", "must be an RFC 3339 timestamp")
		}
		pickupTime = parsed.UTC()
	}

	booking := &domain.Booking{
		UserID:         userID,
		ServiceType:    serviceType,
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		PickupTime:     pickupTime,
		EstimatedPrice: req.EstimatedPrice,
		Currency:       s.currency,
		Status:         domain.BookingStatusPending,
		SecurityLevel:  securityLevel,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// GetBooking retrieves a booking owned by the caller. A booking owned by
// another user reads as not found; existence is not revealed.
func (s *bookingService) GetBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, ErrNotFound
	}

	return booking, nil
}

// ListBookings pages through the caller's own bookings
func (s *bookingService) ListBookings(ctx context.Context, userID string, query *dto.ListBookingsQuery) (*dto.BookingListResponse, error) {
	return s.list(ctx, userID, query)
}

// ListAllBookings pages through every user's bookings (staff and above)
func (s *bookingService) ListAllBookings(ctx context.Context, query *dto.ListBookingsQuery) (*dto.BookingListResponse, error) {
	return s.list(ctx, "", query)
}

func (s *bookingService) list(ctx context.Context, userID string, query *dto.ListBookingsQuery) (*dto.BookingListResponse, error) {
	page, limit := NormalizePage(query.Page, query.Limit)

	filter := repository.BookingFilter{
		UserID: userID,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if query.Status != "" {
		status := domain.BookingStatus(query.Status)
		if !status.Valid() {
			return nil, NewValidationError("status", "unknown booking status")
		}
		filter.Status = &status
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}

	return &dto.BookingListResponse{
		Bookings: bookings,
		Total:    total,
		Page:     page,
		Limit:    limit,
		Pages:    PageCount(total, limit),
	}, nil
}
