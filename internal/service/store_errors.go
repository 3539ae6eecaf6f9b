package service

import (
	"context"
	"errors"

	"github.com/spec-kit/attendance-service/pkg/result"
)

// failStore classifies a store error into the envelope. Row absence is
// handled by callers before reaching here; anything that remains means the
// store could not serve the request.
func failStore[T any](store string, err error) result.Result[T] {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return result.Fail[T](result.KindStoreUnavailable, store+" store timed out")
	}
	return result.Fail[T](result.KindStoreUnavailable, store+" store unavailable")
}
