package domain

import (
	"errors"
	"fmt"
)

// FetchError marks a failed collaborator call (prices, catalog,
// calculation). Recoverable: the caller keeps serving stale data and
// surfaces a retry to the user.
type FetchError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// UserInputError rejects a request before any network call is made.
type UserInputError string

func (e UserInputError) Error() string {
	return string(e)
}

var (
	ErrUnknownSession       = UserInputError("unknown session")
	ErrNoActiveIndicators   = UserInputError("no active indicators selected")
	ErrCalculationInFlight  = UserInputError("a calculation is already running")
	ErrUnknownIndicator     = UserInputError("unknown indicator")
	ErrIndicatorNotSelected = UserInputError("indicator is not selected")
	ErrUnknownParameter     = UserInputError("unknown parameter")
	ErrInvalidZoomWindow    = UserInputError("zoom window must satisfy 0 <= start < end <= 100")
)
