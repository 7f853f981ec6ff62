package service

import (
	"context"
	"fmt"

	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/internal/dto"
	"github.com/secureride/booking-service/internal/repository"
	"go.uber.org/zap"
)

// auditService implements AuditService. Recording is best effort: an audit
// write failure is logged but never fails the request that triggered it.
type auditService struct {
	auditRepo repository.AuditRepository
	logger    *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository, logger *zap.Logger) AuditService {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record appends an audit log entry
func (s *auditService) Record(ctx context.Context, event string, userID, ip *string, metadata map[string]string) {
	entry := &domain.AuditLog{
		Event:     event,
		UserID:    userID,
		IPAddress: ip,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to record audit event",
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

// List pages through recent audit log entries, newest first
func (s *auditService) List(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error) {
	page, limit = NormalizePage(page, limit)

	total, err := s.auditRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit logs: %w", err)
	}

	entries, err := s.auditRepo.ListRecent(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	if entries == nil {
		entries = []*domain.AuditLog{}
	}

	return &dto.AuditLogListResponse{
		Entries: entries,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   PageCount(total, limit),
	}, nil
}
