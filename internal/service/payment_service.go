package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/internal/dto"
	"github.com/secureride/booking-service/internal/payment"
	"github.com/secureride/booking-service/internal/repository"
	"go.uber.org/zap"
)

// paymentService implements PaymentService interface
type paymentService struct {
	bookingRepo repository.BookingRepository
	gateway     payment.Gateway
	audit       AuditService
	logger      *zap.Logger
	currency    string
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	bookingRepo repository.BookingRepository,
	gateway payment.Gateway,
	audit AuditService,
	logger *zap.Logger,
	currency string,
) PaymentService {
	return &paymentService{
		bookingRepo: bookingRepo,
		gateway:     gateway,
		audit:       audit,
		logger:      logger,
		currency:    currency,
	}
}

// CreatePaymentIntent creates a provider payment intent against the booking
// total and moves the booking to processing. The status write happens only
// after the provider call succeeds, so a provider failure never strands the
// booking in processing without an intent. A completed booking is refused;
// re-requesting an intent while processing is allowed (the intent is
// authorize-only, so no double charge occurs).
func (s *paymentService) CreatePaymentIntent(ctx context.Context, userID, bookingID, ip string) (*dto.PaymentIntentResponse, error) {
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

	switch booking.Status {
	case domain.BookingStatusCompleted:
		return nil, ErrAlreadyPaid
	case domain.BookingStatusCancelled:
		return nil, fmt.Errorf("booking is cancelled: %w", ErrConflict)
	}

	currency := booking.Currency
	if currency == "" {
		currency = s.currency
	}

	amount := payment.MinorUnits(booking.EstimatedPrice)

	intent, err := s.gateway.CreatePaymentIntent(ctx, &payment.IntentRequest{
		Amount:      amount,
		Currency:    currency,
		Description: fmt.Sprintf("%s booking %s", booking.ServiceType, booking.ID),
		Metadata: map[string]string{
			"booking_id": booking.ID,
			"user_id":    booking.UserID,
		},
	})
	if err != nil {
		s.logger.Error("payment provider call failed",
			zap.String("booking_id", booking.ID),
			zap.String("gateway", s.gateway.Name()),
			zap.Error(err),
		)
		return nil, ErrPaymentProvider
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusProcessing, &intent.PaymentIntentID); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.audit.Record(ctx, domain.AuditPaymentIntentCreated, &userID, optional(ip), map[string]string{
		"booking_id":        booking.ID,
		"payment_intent_id": intent.PaymentIntentID,
	})

	return &dto.PaymentIntentResponse{
		BookingID:    booking.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     currency,
		Status:       domain.BookingStatusProcessing,
	}, nil
}
