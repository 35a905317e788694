package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers branch on.
var (
	ErrLoginRequired        = errors.New("login required")
	ErrKioskSessionRequired = errors.New("kiosk session required")
	ErrItemNotFound         = errors.New("cart item not found")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrEmptyLocalCart       = errors.New("local cart is empty")
	ErrOTPThrottled         = errors.New("please wait before requesting another code")
	ErrMalformedToken       = errors.New("access token has no expiry claim")
	ErrNoRefreshToken       = errors.New("no refresh token available")
)

// Kind classifies errors crossing the core boundary. UI collaborators switch
// on the kind, never on transport details.
type Kind string

const (
	// KindUnauthorized is a 401 that survived the refresh-and-retry cycle.
	KindUnauthorized Kind = "UNAUTHORIZED"
	// KindReauthRequired is fatal to the session: credentials are cleared
	// and the user must log in again. Never retried automatically.
	KindReauthRequired Kind = "REAUTH_REQUIRED"
	// KindValidation is a 400-class rejection, surfaced verbatim.
	KindValidation Kind = "VALIDATION"
	// KindNotFound is a 404. The cart use case normalizes it away.
	KindNotFound Kind = "NOT_FOUND"
	// KindNetwork is a transport failure; the caller decides whether to retry.
	KindNetwork Kind = "NETWORK"
	// KindPartialMerge marks a kiosk checkout that mutated server state
	// before failing.
	KindPartialMerge Kind = "PARTIAL_MERGE"
	// KindInternal is everything else.
	KindInternal Kind = "INTERNAL"
)

// APIError is the single structured error shape that reaches UI
// collaborators. Raw transport errors never cross the core boundary.
type APIError struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Cause      error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewAPIError creates a new APIError.
func NewAPIError(kind Kind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// WithCause attaches the underlying error.
func (e *APIError) WithCause(cause error) *APIError {
	e.Cause = cause
	return e
}

// WithStatus attaches the HTTP status code the server responded with.
func (e *APIError) WithStatus(code int) *APIError {
	e.StatusCode = code
	return e
}

// KindOf extracts the error kind, defaulting to KindInternal.
func KindOf(err error) Kind {
	var merge *PartialMergeError
	if errors.As(err, &merge) {
		return KindPartialMerge
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// PartialMergeError reports a kiosk checkout that failed after some local
// items were already pushed to the server cart. The local basket is
// preserved either way, but the server-side cart may be partially populated.
type PartialMergeError struct {
	Pushed int // items already on the server cart
	Total  int
	Cause  error
}

func (e *PartialMergeError) Error() string {
	return fmt.Sprintf("kiosk checkout failed after pushing %d of %d items: %v", e.Pushed, e.Total, e.Cause)
}

func (e *PartialMergeError) Unwrap() error {
	return e.Cause
}
