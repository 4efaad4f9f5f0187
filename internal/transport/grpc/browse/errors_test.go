package browse

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/collection"
)

func TestMapDomainErrorToGRPC(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{domain.ErrViewNotFound, codes.NotFound},
		{fmt.Errorf("open: %w", domain.ErrTooManyViews), codes.ResourceExhausted},
		{collection.ErrLoadInProgress, codes.Aborted},
		{fmt.Errorf("%w: %q", domain.ErrUnknownCollection, "boats"), codes.InvalidArgument},
		{domain.ErrOwnerRequired, codes.InvalidArgument},
		{domain.ErrPageSizeTooLarge, codes.InvalidArgument},
		{collection.ErrUnknownFilter, codes.InvalidArgument},
		{collection.ErrUnknownSort, codes.InvalidArgument},
		{collection.ErrInvalidMode, codes.InvalidArgument},
		{collection.ErrNoSearchFilter, codes.InvalidArgument},
		{context.Canceled, codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("spanner exploded"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(mapDomainErrorToGRPC(tt.err)))
		})
	}

	assert.NoError(t, mapDomainErrorToGRPC(nil))
}

func TestInternalErrorsHideDetails(t *testing.T) {
	st, _ := status.FromError(mapDomainErrorToGRPC(errors.New("dsn=secret")))
	assert.Equal(t, "internal server error", st.Message())
}
