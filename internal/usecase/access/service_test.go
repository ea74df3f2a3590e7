package access

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harborfund/vault-backend/internal/domain"
)

// MockTokenRepository is a mock implementation of TokenRepository for testing
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CapabilityToken, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapabilityToken), args.Error(1)
}

func (m *MockTokenRepository) Save(ctx context.Context, token *domain.CapabilityToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func adminToken(id uuid.UUID) *domain.CapabilityToken {
	return &domain.CapabilityToken{ID: id, Role: domain.RoleAdmin, IssuedAt: time.Now()}
}

func TestAuthorize_ValidToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := NewService(repo, zerolog.Nop())

	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(adminToken(id), nil)

	assert.NoError(t, service.Authorize(ctx, id, domain.RoleAdmin))
}

func TestAuthorize_WrongRole(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := NewService(repo, zerolog.Nop())

	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(adminToken(id), nil)

	err := service.Authorize(ctx, id, domain.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthorize_RevokedAndFrozen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(tok *domain.CapabilityToken)
	}{
		{"revoked token", func(tok *domain.CapabilityToken) { tok.Revoked = true }},
		{"frozen token", func(tok *domain.CapabilityToken) { tok.Frozen = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTokenRepository)
			service := NewService(repo, zerolog.Nop())

			id := uuid.New()
			tok := adminToken(id)
			tt.mutate(tok)
			repo.On("GetByID", ctx, id).Return(tok, nil)

			err := service.Authorize(ctx, id, domain.RoleAdmin)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestAuthorize_UnknownToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := NewService(repo, zerolog.Nop())

	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, assert.AnError)

	err := service.Authorize(ctx, id, domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGrant_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := NewService(repo, zerolog.Nop())

	operatorID := uuid.New()
	repo.On("GetByID", ctx, operatorID).Return(
		&domain.CapabilityToken{ID: operatorID, Role: domain.RoleOperator}, nil)

	_, err := service.Grant(ctx, operatorID, domain.RoleOperator)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGrant_IssuesToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := NewService(repo, zerolog.Nop())

	adminID := uuid.New()
	repo.On("GetByID", ctx, adminID).Return(adminToken(adminID), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.CapabilityToken")).Return(nil)

	token, err := service.Grant(ctx, adminID, domain.RoleOperator)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOperator, token.Role)
	assert.False(t, token.Revoked)
	repo.AssertCalled(t, "Save", ctx, token)
}

func TestSetFrozen_FlipsTokenState(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := NewService(repo, zerolog.Nop())

	adminID := uuid.New()
	targetID := uuid.New()
	target := &domain.CapabilityToken{ID: targetID, Role: domain.RoleOperator}

	repo.On("GetByID", ctx, adminID).Return(adminToken(adminID), nil)
	repo.On("GetByID", ctx, targetID).Return(target, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.CapabilityToken")).Return(nil)

	require.NoError(t, service.SetFrozen(ctx, adminID, targetID, true))
	assert.True(t, target.Frozen)
}
