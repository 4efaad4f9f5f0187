package browse

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

// mapDomainErrorToGRPC converts browse and collection errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrViewNotFound):
		return status.Error(codes.NotFound, "view not found")

	case errors.Is(err, domain.ErrTooManyViews):
		return status.Error(codes.ResourceExhausted, "too many open views")

	case errors.Is(err, collection.ErrLoadInProgress):
		return status.Error(codes.Aborted, "a page load is already in progress")

	case errors.Is(err, domain.ErrUnknownCollection),
		errors.Is(err, domain.ErrOwnerRequired),
		errors.Is(err, domain.ErrPageSizeTooLarge),
		errors.Is(err, collection.ErrUnknownFilter),
		errors.Is(err, collection.ErrUnknownSort),
		errors.Is(err, collection.ErrInvalidMode),
		errors.Is(err, collection.ErrInvalidPageSize),
		errors.Is(err, collection.ErrNoSearchFilter):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
