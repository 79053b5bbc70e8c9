package domain

import (
	"fmt"
	"math"
)

// Physical limits of the printer, applied uniformly to every batch.
type PrinterConstraints struct {
	MaxVolume float64
	MaxItems  int
}

// Validate reports ErrInvalidConstraints when either limit is not positive.
func (c PrinterConstraints) Validate() error {
	if c.MaxItems <= 0 {
		return fmt.Errorf("%w: max_items must be positive (got %d)", ErrInvalidConstraints, c.MaxItems)
	}
	if math.IsNaN(c.MaxVolume) || c.MaxVolume <= 0 {
		return fmt.Errorf("%w: max_volume must be positive (got %v)", ErrInvalidConstraints, c.MaxVolume)
	}
	return nil
}
