package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid field configuration")
	ErrInvalidCoordinate    = errors.New("coordinate out of bounds")
	ErrMinesPlaced          = errors.New("mines already placed")
)

// ConfigurationError describes why a width/height/mine count triple was
// rejected. It matches [ErrInvalidConfiguration] with [errors.Is].
type ConfigurationError struct {
	Width, Height, MineCount int
}

// [ConfigurationError] implements [error]
func (e ConfigurationError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("%s: width must be positive, got %d", ErrInvalidConfiguration, e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("%s: height must be positive, got %d", ErrInvalidConfiguration, e.Height)
	case e.MineCount < 0:
		return fmt.Sprintf("%s: negative mine count %d", ErrInvalidConfiguration, e.MineCount)
	default:
		return fmt.Sprintf(
			"%s: %d mines do not leave a free cell on a %dx%d field",
			ErrInvalidConfiguration, e.MineCount, e.Width, e.Height,
		)
	}
}

func (e ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
