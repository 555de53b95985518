package coverage

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownIndicator = errors.New("unknown indicator")
	ErrUnknownCountry   = errors.New("unknown country")
	ErrEmptySnapshot    = errors.New("empty snapshot")
)

// UnknownIndicatorError is returned when the dataset has no table for Indicator.
type UnknownIndicatorError struct {
	Indicator string
}

func (e *UnknownIndicatorError) Error() string {
	return fmt.Sprintf("unknown indicator %q", e.Indicator)
}

func (e *UnknownIndicatorError) Is(target error) bool {
	return target == ErrUnknownIndicator
}

// UnknownCountryError is returned when Indicator's table has no row for Country.
type UnknownCountryError struct {
	Indicator string
	Country   string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country %q for indicator %q", e.Country, e.Indicator)
}

func (e *UnknownCountryError) Is(target error) bool {
	return target == ErrUnknownCountry
}

// EmptySnapshotError is returned by Extremes when there is nothing to compare.
type EmptySnapshotError struct{}

func (e *EmptySnapshotError) Error() string {
	return "snapshot has no values"
}

func (e *EmptySnapshotError) Is(target error) bool {
	return target == ErrEmptySnapshot
}
