package kv

import (
	"errors"
	"fmt"
)

// IsConfigurationError returns true if err is caused by [ConfigurationError].
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsBackendError returns true if err is caused by [BackendError].
func IsBackendError(err error) bool {
	var target *BackendError
	return errors.As(err, &target)
}

// ConfigurationError is returned when a store is constructed with a
// connection URL that is missing or unacceptable.
//
// It is only ever returned at construction time. No store is returned
// alongside it.
type ConfigurationError struct {
	// URL is the rejected connection URL. It is empty if no URL was supplied.
	URL string

	// Reason describes why the URL was rejected.
	Reason string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid connection URL %q: %s", e.URL, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// BackendError is returned when an operation on a live store fails, for
// example due to a network error, a cancelled context or a malformed
// response.
//
// Operations are never retried. Cause is always non-nil.
type BackendError struct {
	// Op is the name of the failed operation, such as "get" or "list".
	Op string

	// Key is the key (or prefix, for "list") the operation was applied to.
	Key string

	// Cause is the underlying error.
	Cause error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("unable to %s %q: %s", e.Op, e.Key, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}
