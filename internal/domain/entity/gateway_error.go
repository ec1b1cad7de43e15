package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a gateway failure.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConfig     ErrorKind = "config"
	KindAuth       ErrorKind = "auth"
	KindRateLimit  ErrorKind = "rate_limit"
	KindBadRequest ErrorKind = "bad_request"
	KindProvider   ErrorKind = "provider"
	KindNetwork    ErrorKind = "network"
)

// Sentinels for errors.Is. A *GatewayError matches the sentinel of its kind.
var (
	ErrValidation = &GatewayError{Kind: KindValidation}
	ErrConfig     = &GatewayError{Kind: KindConfig}
	ErrAuth       = &GatewayError{Kind: KindAuth}
	ErrRateLimit  = &GatewayError{Kind: KindRateLimit}
	ErrBadRequest = &GatewayError{Kind: KindBadRequest}
	ErrProvider   = &GatewayError{Kind: KindProvider}
	ErrNetwork    = &GatewayError{Kind: KindNetwork}
)

// GatewayError is the only error shape that leaves the API gateway.
// None of the kinds are retried.
type GatewayError struct {
	Kind       ErrorKind
	Provider   Provider
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return string(e.Kind) + " error"
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is matches any *GatewayError of the same kind.
func (e *GatewayError) Is(target error) bool {
	var t *GatewayError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewGatewayError builds an error for provider with a user-facing message.
func NewGatewayError(kind ErrorKind, provider Provider, status int, msg string) *GatewayError {
	return &GatewayError{Kind: kind, Provider: provider, StatusCode: status, Message: msg}
}

// KindOf returns the kind of err, or "" if it is not a gateway error.
func KindOf(err error) ErrorKind {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

// AsGatewayError returns err as a *GatewayError, wrapping anything else as
// a provider error so callers always get the fixed taxonomy.
func AsGatewayError(err error, provider Provider) *GatewayError {
	if err == nil {
		return nil
	}
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge
	}
	return &GatewayError{
		Kind:     KindProvider,
		Provider: provider,
		Message:  fmt.Sprintf("%s request failed", provider.DisplayName()),
		Err:      err,
	}
}
