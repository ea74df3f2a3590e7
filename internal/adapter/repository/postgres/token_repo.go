package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harborfund/vault-backend/internal/domain"
)

// tokenRepository implements domain.TokenRepository
type tokenRepository struct {
	db *DB
}

// NewTokenRepository creates a new capability token repository
func NewTokenRepository(db *DB) domain.TokenRepository {
	return &tokenRepository{db: db}
}

// GetByID retrieves a token by its ID
func (r *tokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CapabilityToken, error) {
	query := `SELECT id, role, issued_at, revoked, frozen FROM capability_tokens WHERE id = $1`

	token := &domain.CapabilityToken{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&token.ID,
		&token.Role,
		&token.IssuedAt,
		&token.Revoked,
		&token.Frozen,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load token %s: %w", id, err)
	}
	return token, nil
}

// Save creates or replaces a token
func (r *tokenRepository) Save(ctx context.Context, token *domain.CapabilityToken) error {
	query := `
		INSERT INTO capability_tokens (id, role, issued_at, revoked, frozen)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET role = EXCLUDED.role, revoked = EXCLUDED.revoked, frozen = EXCLUDED.frozen
	`
	_, err := r.db.ExecContext(ctx, query,
		token.ID,
		string(token.Role),
		token.IssuedAt,
		token.Revoked,
		token.Frozen,
	)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
