package logger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/narwhalmedia/greenroom/pkg/interfaces"
)

// UnaryServerInterceptor returns a gRPC unary server interceptor that tags each
// call with a request id, stores the scoped logger in the context and logs the
// outcome.
func UnaryServerInterceptor(logger interfaces.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		scoped := logger.WithFields(
			interfaces.String("request_id", uuid.NewString()),
			interfaces.String("method", info.FullMethod),
		)
		ctx = WithContext(ctx, scoped)

		scoped.Debug("gRPC request started")

		resp, err := handler(ctx, req)

		code := codes.OK
		if err != nil {
			if s, ok := status.FromError(err); ok {
				code = s.Code()
			} else {
				code = codes.Unknown
			}
		}

		fields := []interfaces.Field{
			interfaces.Duration("duration", time.Since(start)),
			interfaces.String("status", code.String()),
		}

		if err != nil {
			fields = append(fields, interfaces.Error(err))
			scoped.Error("gRPC request failed", fields...)
		} else {
			scoped.Info("gRPC request completed", fields...)
		}

		return resp, err
	}
}
