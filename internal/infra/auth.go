package infra

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/s21platform/team-chat-service/internal/config"
)

const (
	HeaderUserUUID   = "X-User-Uuid"
	metadataUserUUID = "uuid"
)

// AuthInterceptorHTTP copies the caller identity set by the gateway into the
// context. Requests without it pass through; the core rejects them.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if userUUID := r.Header.Get(HeaderUserUUID); userUUID != "" {
			ctx = context.WithValue(ctx, config.KeyUUID, userUUID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AuthInterceptorGRPC(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if values := md.Get(metadataUserUUID); len(values) > 0 && values[0] != "" {
			ctx = context.WithValue(ctx, config.KeyUUID, values[0])
		}
	}

	return handler(ctx, req)
}
