package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/pkg/database"
)

// verificationRepository implements VerificationRepository interface
type verificationRepository struct {
	db *database.Postgres
}

// NewVerificationRepository creates a new verification token repository
func NewVerificationRepository(db *database.Postgres) VerificationRepository {
	return &verificationRepository{db: db}
}

// Create creates a new verification token
func (r *verificationRepository) Create(ctx context.Context, token *domain.VerificationToken) error {
	query := `
		INSERT INTO verification_tokens (id, email, token_hash, purpose, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		token.ID,
		token.Email,
		token.TokenHash,
		token.Purpose,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return fmt.Errorf("verification token already exists: %w", ErrDuplicateToken)
		}
		return fmt.Errorf("failed to create verification token: %w", err)
	}

	return nil
}

// GetByTokenHash retrieves a verification token by its hash and purpose
func (r *verificationRepository) GetByTokenHash(ctx context.Context, tokenHash, purpose string) (*domain.VerificationToken, error) {
	query := `
		SELECT id, email, token_hash, purpose, expires_at, used_at, created_at
		FROM verification_tokens
		WHERE token_hash = $1 AND purpose = $2
	`

	token := &domain.VerificationToken{}
	var usedAt sql.NullTime

	err := r.db.DB.QueryRowContext(ctx, query, tokenHash, purpose).Scan(
		&token.ID,
		&token.Email,
		&token.TokenHash,
		&token.Purpose,
		&token.ExpiresAt,
		&usedAt,
		&token.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("verification token not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get verification token: %w", err)
	}

	if usedAt.Valid {
		token.UsedAt = &usedAt.Time
	}

	return token, nil
}

// ConsumeAndActivate marks the token used and flips the user to active in one
// transaction. The token row is guarded against concurrent redemption with a
// used_at IS NULL predicate; losing the race surfaces as ErrTokenConsumed and
// leaves the user untouched.
func (r *verificationRepository) ConsumeAndActivate(ctx context.Context, tokenID, userID string) error {
	tx, err := r.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	result, err := tx.ExecContext(ctx,
		`UPDATE verification_tokens SET used_at = $1 WHERE id = $2 AND used_at IS NULL AND expires_at > $1`,
		now, tokenID,
	)
	if err != nil {
		return fmt.Errorf("failed to consume verification token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("verification token %s: %w", tokenID, ErrTokenConsumed)
	}

	result, err = tx.ExecContext(ctx,
		`UPDATE users SET status = $1, email_verified_at = $2, updated_at = $2 WHERE id = $3`,
		domain.UserStatusActive, now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}

	rowsAffected, err = result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user with id %s not found: %w", userID, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit verification: %w", err)
	}

	return nil
}
