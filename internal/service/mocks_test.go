package service

import (
	"context"

	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *domain.User) error
	GetByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc              func(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmailOrPhoneFunc func(ctx context.Context, email string, phone *string) (bool, error)
	UpdateFunc               func(ctx context.Context, user *domain.User) error
	UpdateLastLoginFunc      func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) ExistsByEmailOrPhone(ctx context.Context, email string, phone *string) (bool, error) {
	if m.ExistsByEmailOrPhoneFunc != nil {
		return m.ExistsByEmailOrPhoneFunc(ctx, email, phone)
	}
	return false, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, userID)
	}
	return nil
}

// MockTokenRepository is a mock implementation of repository.TokenRepository
type MockTokenRepository struct {
	CreateFunc            func(ctx context.Context, token *domain.RefreshToken) error
	GetByTokenHashFunc    func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	DeleteByTokenHashFunc func(ctx context.Context, tokenHash string) error
	DeleteExpiredFunc     func(ctx context.Context) error
}

func (m *MockTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if m.GetByTokenHashFunc != nil {
		return m.GetByTokenHashFunc(ctx, tokenHash)
	}
	return nil, repository.ErrNotFound
}

func (m *MockTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if m.DeleteByTokenHashFunc != nil {
		return m.DeleteByTokenHashFunc(ctx, tokenHash)
	}
	return nil
}

func (m *MockTokenRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return nil
}

// MockVerificationRepository is a mock implementation of repository.VerificationRepository
type MockVerificationRepository struct {
	CreateFunc             func(ctx context.Context, token *domain.VerificationToken) error
	GetByTokenHashFunc     func(ctx context.Context, tokenHash, purpose string) (*domain.VerificationToken, error)
	ConsumeAndActivateFunc func(ctx context.Context, tokenID, userID string) error
}

func (m *MockVerificationRepository) Create(ctx context.Context, token *domain.VerificationToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockVerificationRepository) GetByTokenHash(ctx context.Context, tokenHash, purpose string) (*domain.VerificationToken, error) {
	if m.GetByTokenHashFunc != nil {
		return m.GetByTokenHashFunc(ctx, tokenHash, purpose)
	}
	return nil, repository.ErrNotFound
}

func (m *MockVerificationRepository) ConsumeAndActivate(ctx context.Context, tokenID, userID string) error {
	if m.ConsumeAndActivateFunc != nil {
		return m.ConsumeAndActivateFunc(ctx, tokenID, userID)
	}
	return nil
}

// MockBookingRepository is a mock implementation of repository.BookingRepository
type MockBookingRepository struct {
	CreateFunc       func(ctx context.Context, booking *domain.Booking) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Booking, error)
	ListFunc         func(ctx context.Context, filter repository.BookingFilter) ([]*domain.Booking, error)
	CountFunc        func(ctx context.Context, filter repository.BookingFilter) (int, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.BookingStatus, paymentIntentID *string) error
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockBookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]*domain.Booking, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingRepository) Count(ctx context.Context, filter repository.BookingFilter) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentIntentID *string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, paymentIntentID)
	}
	return nil
}

// MockAuditRepository is a mock implementation of repository.AuditRepository
type MockAuditRepository struct {
	CreateFunc     func(ctx context.Context, entry *domain.AuditLog) error
	ListRecentFunc func(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error)
	CountFunc      func(ctx context.Context) (int, error)

	Entries []*domain.AuditLog
}

func (m *MockAuditRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockAuditRepository) ListRecent(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit, offset)
	}
	return []*domain.AuditLog{}, nil
}

func (m *MockAuditRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return len(m.Entries), nil
}
