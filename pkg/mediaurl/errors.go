package mediaurl

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	params, err := codec.Decode(query)
//	if errors.Is(err, mediaurl.ErrMissingParameter) {
//	    // Handle a truncated plugin URL
//	}
var (
	// ErrMalformedPair indicates a query pair without exactly one '='.
	ErrMalformedPair = errors.New("malformed query pair")

	// ErrMissingAction indicates the query has no action parameter.
	ErrMissingAction = errors.New("missing action parameter")

	// ErrUnknownAction indicates the action has no registered schema.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMissingParameter indicates a required parameter is absent.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidItem indicates a pickled media item could not be decoded.
	ErrInvalidItem = errors.New("invalid media item")

	// ErrStoreUnavailable indicates no pickle store is configured or readable.
	ErrStoreUnavailable = errors.New("pickle store unavailable")

	// ErrItemNotFound indicates a stored pickle does not contain the item.
	ErrItemNotFound = errors.New("item not found in pickle store")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")
)

// MalformedPairError is returned when a key=value pair does not contain
// exactly one '='.
type MalformedPairError struct {
	Pair string
}

func (e *MalformedPairError) Error() string {
	return fmt.Sprintf("%s: %q must contain exactly one '='", ErrMalformedPair, e.Pair)
}

func (e *MalformedPairError) Unwrap() error { return ErrMalformedPair }

// MissingActionError is returned when a non-empty query has no action.
type MissingActionError struct{}

func (e *MissingActionError) Error() string {
	return fmt.Sprintf("%s %q", ErrMissingAction, ParamAction)
}

func (e *MissingActionError) Unwrap() error { return ErrMissingAction }

// UnknownActionError is returned when the action is not in the schema.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("%s: %q is not implemented", ErrUnknownAction, e.Action)
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

// MissingParameterError is returned when a required parameter of an action
// is absent from the query.
type MissingParameterError struct {
	Parameter string
	Action    string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s %q for action %q", ErrMissingParameter, e.Parameter, e.Action)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

// IsQueryError reports whether err stems from decoding a malformed query.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrMalformedPair) ||
		errors.Is(err, ErrMissingAction) ||
		errors.Is(err, ErrUnknownAction) ||
		errors.Is(err, ErrMissingParameter)
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case IsQueryError(err):
		return ExitMalformedQuery
	case errors.Is(err, ErrInvalidItem):
		return ExitInvalidItem
	case errors.Is(err, ErrStoreUnavailable), errors.Is(err, ErrItemNotFound):
		return ExitStoreError
	}

	// cobra reports flag and argument problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}
