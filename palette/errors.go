package palette

import (
	"errors"
	"fmt"
)

var ErrInvalidColorFormat = errors.New("invalid color format")
var ErrToleranceOutOfRange = errors.New("tolerance out of range")

const (
	MinTolerance     = 0
	MaxTolerance     = 80
	DefaultTolerance = 20
	DefaultBaseHex   = "ff0000"
)

// ColorError reports the input that failed to parse as a hex color.
type ColorError struct {
	Input string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("%v: %q is not a 6 digit hex color", ErrInvalidColorFormat, e.Input)
}

func (e *ColorError) Is(target error) bool {
	return target == ErrInvalidColorFormat
}

// ValidateTolerance checks value against the range the color picker offers.
// Finder.SetTolerance does not call it; hosts decide whether to enforce it.
func ValidateTolerance(value int) error {
	if value < MinTolerance || value > MaxTolerance {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrToleranceOutOfRange, value, MinTolerance, MaxTolerance)
	}
	return nil
}
