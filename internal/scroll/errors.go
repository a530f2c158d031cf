package scroll

import (
	"errors"
	"fmt"
)

// Sentinel causes. Match them with errors.Is; they are usually wrapped in a
// ConfigurationError or ResourceError.
var (
	ErrNoVariants       = errors.New("no tile variants configured")
	ErrNoViewport       = errors.New("viewport unavailable")
	ErrNoFactory        = errors.New("no tile factory configured")
	ErrUnknownDirection = errors.New("unknown scroll direction")
	ErrBadExtent        = errors.New("tile extent must be positive")
	ErrBadSpeed         = errors.New("speed must be finite and non-negative")
	ErrEmptySlot        = errors.New("pool slot is empty")
)

// ConfigurationError is fatal at initialization. No tiles exist when it is
// returned from New.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("scroll: configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ResourceError reports that the tile factory could not produce a tile.
// During recycling the affected slot keeps its previous tile and is retried
// on the next tick.
type ResourceError struct {
	Slot    int // -1 for the measurement sample
	Variant string
	Err     error
}

func (e *ResourceError) Error() string {
	if e.Slot < 0 {
		return fmt.Sprintf("scroll: cannot create sample tile %q: %v", e.Variant, e.Err)
	}
	return fmt.Sprintf("scroll: slot %d: cannot create tile %q: %v", e.Slot, e.Variant, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func configErr(err error) error {
	return &ConfigurationError{Err: err}
}
