package domain

import (
	"errors"
	"fmt"
)

// ErrNoData is returned by a rate source when a response parsed fine but
// contained none of the requested currencies. It is an empty-result signal,
// not a failure; the pipeline drops the date without logging an error.
var ErrNoData = errors.New("no rate data for requested currencies")

// ErrConfigNotFound is returned when the configuration file is missing.
var ErrConfigNotFound = errors.New("configuration not found")

// FetchError wraps a failed archive request for a single date: transport
// failure, non-200 status, or an unparseable body. One FetchError never
// aborts the pipeline, the affected date is skipped.
type FetchError struct {
	URL    string
	Status int // zero when the request never got a response
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps a transport or decode failure.
func NewFetchError(url string, err error) *FetchError {
	return &FetchError{URL: url, Err: err}
}

// NewStatusError marks a response with a non-success status code.
func NewStatusError(url string, status int) *FetchError {
	return &FetchError{URL: url, Status: status}
}

// IsFetchError reports whether err is (or wraps) a FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
