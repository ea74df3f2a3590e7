package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/harborfund/vault-backend/internal/usecase/access"
)

type contextKey string

const tokenContextKey contextKey = "capability-token"

// AuthInterceptor returns a gRPC unary server interceptor that admits
// calls carrying a live capability token in the authorization metadata.
// Admission here is the ordering point for the freeze race: a call
// admitted before a freeze lands still completes, a call arriving after
// is rejected. Role requirements are enforced inside the services.
func AuthInterceptor(accessService *access.Service) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		tokenID, err := uuid.Parse(authHeaders[0])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "malformed capability token")
		}

		if err := accessService.Admit(ctx, tokenID); err != nil {
			return nil, status.Error(codes.PermissionDenied, "capability token rejected")
		}

		return handler(context.WithValue(ctx, tokenContextKey, tokenID), req)
	}
}

// TokenFromContext returns the capability token ID admitted by the
// interceptor
func TokenFromContext(ctx context.Context) (uuid.UUID, bool) {
	tokenID, ok := ctx.Value(tokenContextKey).(uuid.UUID)
	return tokenID, ok
}
