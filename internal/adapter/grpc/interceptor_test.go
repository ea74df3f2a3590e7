package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/harborfund/vault-backend/internal/adapter/repository/memory"
	"github.com/harborfund/vault-backend/internal/domain"
	"github.com/harborfund/vault-backend/internal/usecase/access"
)

func newAccessService(t *testing.T, tokens ...*domain.CapabilityToken) *access.Service {
	t.Helper()
	repo := memory.NewTokenRepository()
	for _, token := range tokens {
		require.NoError(t, repo.Save(context.Background(), token))
	}
	return access.NewService(repo, zerolog.Nop())
}

func invoke(interceptor grpclib.UnaryServerInterceptor, ctx context.Context) (uuid.UUID, bool, error) {
	var (
		gotToken uuid.UUID
		gotOK    bool
	)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotToken, gotOK = TokenFromContext(ctx)
		return nil, nil
	}
	_, err := interceptor(ctx, nil, &grpclib.UnaryServerInfo{FullMethod: "/vault.v1.VaultService/GetVaultStatus"}, handler)
	return gotToken, gotOK, err
}

func TestAuthInterceptor_MissingMetadata(t *testing.T) {
	interceptor := AuthInterceptor(newAccessService(t))

	_, _, err := invoke(interceptor, context.Background())
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_MissingAuthorizationHeader(t *testing.T) {
	interceptor := AuthInterceptor(newAccessService(t))
	ctx := metadata.NewIncomingContext(context.Background(), metadata.MD{})

	_, _, err := invoke(interceptor, ctx)
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_MalformedToken(t *testing.T) {
	interceptor := AuthInterceptor(newAccessService(t))
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "not-a-uuid"))

	_, _, err := invoke(interceptor, ctx)
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_UnknownToken(t *testing.T) {
	interceptor := AuthInterceptor(newAccessService(t))
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", uuid.NewString()))

	_, _, err := invoke(interceptor, ctx)
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestAuthInterceptor_FrozenTokenRejected(t *testing.T) {
	token := &domain.CapabilityToken{
		ID:       uuid.New(),
		Role:     domain.RoleOperator,
		IssuedAt: time.Now(),
		Frozen:   true,
	}
	interceptor := AuthInterceptor(newAccessService(t, token))
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", token.ID.String()))

	_, _, err := invoke(interceptor, ctx)
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestAuthInterceptor_AdmitsLiveToken(t *testing.T) {
	token := &domain.CapabilityToken{
		ID:       uuid.New(),
		Role:     domain.RoleOperator,
		IssuedAt: time.Now(),
	}
	interceptor := AuthInterceptor(newAccessService(t, token))
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", token.ID.String()))

	gotToken, ok, err := invoke(interceptor, ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, token.ID, gotToken)
}
