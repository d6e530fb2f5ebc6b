package grpc

import (
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/givebridge/givebridge/internal/apperror"
)

// mapError translates the application error taxonomy onto gRPC status
// codes. Integrity failures get their own code so callers can tell a failed
// rollback apart from an ordinary internal error. Errors outside the
// taxonomy are logged with their detail and reported generically.
func mapError(err error) error {
	switch {
	case apperror.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case apperror.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case apperror.IsConflict(err):
		return status.Error(codes.AlreadyExists, err.Error())
	case apperror.IsIntegrity(err):
		return status.Error(codes.DataLoss, err.Error())
	default:
		slog.Error("unexpected error in pledge handler", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
