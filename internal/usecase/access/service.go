package access

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harborfund/vault-backend/internal/domain"
)

// Service validates capability tokens and enforces the freeze list.
// Authorization happens once at call admission: a freeze that lands after
// a call was admitted does not cancel the in-flight call, while a freeze
// that lands before admission rejects it. Admission order is the source
// of truth for that race.
type Service struct {
	TokenRepo domain.TokenRepository
	Logger    zerolog.Logger
}

// NewService creates a new access Service instance
func NewService(tokenRepo domain.TokenRepository, logger zerolog.Logger) *Service {
	return &Service{
		TokenRepo: tokenRepo,
		Logger:    logger,
	}
}

// Authorize admits a call carrying the given token ID if the token is
// known, not revoked, not frozen, and carries the required role.
func (s *Service) Authorize(ctx context.Context, tokenID uuid.UUID, role domain.Role) error {
	token, err := s.TokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("%w: unknown token", domain.ErrUnauthorized)
	}
	if !token.Usable(role) {
		return fmt.Errorf("%w: token %s cannot act as %s", domain.ErrUnauthorized, tokenID, role)
	}
	return nil
}

// Admit admits a call carrying any live, unfrozen token regardless of
// role. Used at the transport edge; role checks happen in the services.
func (s *Service) Admit(ctx context.Context, tokenID uuid.UUID) error {
	token, err := s.TokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("%w: unknown token", domain.ErrUnauthorized)
	}
	if token.Revoked || token.Frozen {
		return fmt.Errorf("%w: token %s is not usable", domain.ErrUnauthorized, tokenID)
	}
	return nil
}

// Grant issues a new capability token with the given role.
// Only the admin role may issue tokens.
func (s *Service) Grant(ctx context.Context, adminID uuid.UUID, role domain.Role) (*domain.CapabilityToken, error) {
	if err := s.Authorize(ctx, adminID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && role != domain.RoleOperator {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	token := &domain.CapabilityToken{
		ID:       uuid.New(),
		Role:     role,
		IssuedAt: time.Now(),
	}
	if err := s.TokenRepo.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	s.Logger.Info().Str("role", string(role)).Str("token", token.ID.String()).Msg("capability token granted")
	return token, nil
}

// Revoke permanently invalidates a token
func (s *Service) Revoke(ctx context.Context, adminID, tokenID uuid.UUID) error {
	if err := s.Authorize(ctx, adminID, domain.RoleAdmin); err != nil {
		return err
	}

	token, err := s.TokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("failed to load token: %w", err)
	}
	token.Revoked = true
	if err := s.TokenRepo.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	s.Logger.Info().Str("token", tokenID.String()).Msg("capability token revoked")
	return nil
}

// SetFrozen freezes or unfreezes a token. Freezing takes effect for
// subsequently admitted calls only.
func (s *Service) SetFrozen(ctx context.Context, adminID, tokenID uuid.UUID, frozen bool) error {
	if err := s.Authorize(ctx, adminID, domain.RoleAdmin); err != nil {
		return err
	}

	token, err := s.TokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("failed to load token: %w", err)
	}
	token.Frozen = frozen
	if err := s.TokenRepo.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	s.Logger.Info().Str("token", tokenID.String()).Bool("frozen", frozen).Msg("token freeze state changed")
	return nil
}

// Bootstrap seeds the initial admin token if it does not exist yet.
// Used at startup so a fresh deployment has exactly one admin capability.
func (s *Service) Bootstrap(ctx context.Context, adminID uuid.UUID) error {
	if _, err := s.TokenRepo.GetByID(ctx, adminID); err == nil {
		return nil
	}

	token := &domain.CapabilityToken{
		ID:       adminID,
		Role:     domain.RoleAdmin,
		IssuedAt: time.Now(),
	}
	if err := s.TokenRepo.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to seed admin token: %w", err)
	}
	s.Logger.Info().Msg("admin token seeded")
	return nil
}
