package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown category")

// TimingError rejects a trip whose duration is shorter than the route allows.
type TimingError struct {
	Route         Route
	MinHours      float64
	DurationHours float64
}

func (e *TimingError) Error() string {
	return fmt.Sprintf(
		"Invalid timing: Minimum travel time from %s to %s is %s hours.",
		e.Route.Source, e.Route.Destination, FormatHours(e.MinHours),
	)
}

// ValidationError reports a malformed or out-of-vocabulary input field.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

func IsTiming(err error) bool {
	var target *TimingError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
