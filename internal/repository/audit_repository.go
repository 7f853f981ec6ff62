package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/pkg/database"
)

// auditRepository implements AuditRepository. The table is append-only; no
// update or delete statements exist here on purpose.
type auditRepository struct {
	db *database.Postgres
}

// NewAuditRepository creates a new audit log repository
func NewAuditRepository(db *database.Postgres) AuditRepository {
	return &auditRepository{db: db}
}

// Create appends an audit log entry
func (r *auditRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, event, user_id, ip_address, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal audit metadata: %w", err)
	}

	_, err = r.db.DB.ExecContext(ctx, query,
		entry.ID,
		entry.Event,
		entry.UserID,
		entry.IPAddress,
		metadataJSON,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// ListRecent retrieves audit log entries, newest first
func (r *auditRepository) ListRecent(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	query := `
		SELECT id, event, user_id, ip_address, metadata, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditLog
	for rows.Next() {
		entry := &domain.AuditLog{}
		var userID, ipAddress sql.NullString
		var metadataJSON []byte

		err := rows.Scan(
			&entry.ID,
			&entry.Event,
			&userID,
			&ipAddress,
			&metadataJSON,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}

		if userID.Valid {
			entry.UserID = &userID.String
		}
		if ipAddress.Valid {
			entry.IPAddress = &ipAddress.String
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit metadata: %w", err)
			}
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit logs: %w", err)
	}

	return entries, nil
}

// Count counts all audit log entries
func (r *auditRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	return count, nil
}
