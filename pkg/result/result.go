// Package result provides the uniform success/failure envelope used at every
// service boundary. Expected failures travel as data inside the envelope;
// only genuinely unexpected faults are raised as errors.
package result

import (
	"encoding/json"
	"net/http"
)

// FailureKind classifies an expected failure.
type FailureKind string

const (
	KindInvalidCredentials FailureKind = "INVALID_CREDENTIALS"
	KindValidation         FailureKind = "VALIDATION_ERROR"
	KindNotFound           FailureKind = "NOT_FOUND"
	KindStoreUnavailable   FailureKind = "STORE_UNAVAILABLE"
	KindUnexpected         FailureKind = "UNEXPECTED"
)

// Failure describes why an operation did not succeed.
type Failure struct {
	Kind    FailureKind
	Message string
}

// HTTPStatus maps the failure kind to a response status code.
func (f *Failure) HTTPStatus() int {
	switch f.Kind {
	case KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Unit is the value type for operations that succeed without a payload.
type Unit struct{}

// Result is a discriminated success/failure wrapper. The zero value is not
// meaningful; instances must be built through OK or Fail, which guarantees
// that exactly one of value/failure is set.
type Result[T any] struct {
	ok      bool
	value   T
	failure *Failure
}

// OK wraps a successful value.
func OK[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Fail wraps an expected failure.
func Fail[T any](kind FailureKind, message string) Result[T] {
	return Result[T]{failure: &Failure{Kind: kind, Message: message}}
}

// Refail carries an existing failure into a result of a different value type.
func Refail[T any](f *Failure) Result[T] {
	return Result[T]{failure: &Failure{Kind: f.Kind, Message: f.Message}}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Value returns the wrapped value. Only meaningful when IsSuccess is true.
func (r Result[T]) Value() T {
	return r.value
}

// Failure returns the failure, or nil for a successful result.
func (r Result[T]) Failure() *Failure {
	if r.ok {
		return nil
	}
	return r.failure
}

type successEnvelope[T any] struct {
	IsSuccess bool `json:"is_success"`
	Value     T    `json:"value"`
}

type failureEnvelope struct {
	IsSuccess    bool   `json:"is_success"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// MarshalJSON renders the envelope wire shape: exactly one of value or
// error_message is present.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(successEnvelope[T]{IsSuccess: true, Value: r.value})
	}
	return json.Marshal(failureEnvelope{
		ErrorCode:    string(r.failure.Kind),
		ErrorMessage: r.failure.Message,
	})
}
