package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/harborfund/vault-backend/internal/domain"
)

// tokenRepository is an in-memory implementation of domain.TokenRepository
type tokenRepository struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*domain.CapabilityToken
}

// NewTokenRepository creates an empty in-memory token repository
func NewTokenRepository() domain.TokenRepository {
	return &tokenRepository{tokens: make(map[uuid.UUID]*domain.CapabilityToken)}
}

func (r *tokenRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.CapabilityToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[id]
	if !ok {
		return nil, fmt.Errorf("token %s not found", id)
	}
	copied := *token
	return &copied, nil
}

func (r *tokenRepository) Save(_ context.Context, token *domain.CapabilityToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *token
	r.tokens[token.ID] = &copied
	return nil
}
