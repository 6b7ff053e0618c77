package engine

import (
	"errors"
	"fmt"
)

// ConfigError is returned when a hall is created with non-positive dimensions.
type ConfigError struct {
	Rows        int
	SeatsPerRow int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid hall configuration: %d rows, %d seats per row (both must be at least 1)", e.Rows, e.SeatsPerRow)
}

// OutOfRangeError is returned when a purchase targets a seat outside the hall.
type OutOfRangeError struct {
	Row  int
	Seat int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) is outside the hall", e.Row, e.Seat)
}

// ErrAlreadyBooked is returned when a purchase targets a seat that is already sold.
var ErrAlreadyBooked = errors.New("seat already booked")

// IsConfigError reports whether the error is a hall configuration rejection.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsOutOfRange reports whether the error is a seat coordinate bounds failure.
func IsOutOfRange(err error) bool {
	var rangeErr *OutOfRangeError
	return errors.As(err, &rangeErr)
}

// IsAlreadyBooked reports whether the error is a double-booking rejection.
func IsAlreadyBooked(err error) bool {
	return errors.Is(err, ErrAlreadyBooked)
}
