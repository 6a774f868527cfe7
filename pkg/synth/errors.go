package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrLayoutInfeasible matches any LayoutInfeasibleError via errors.Is.
	ErrLayoutInfeasible = errors.New("synth: layout infeasible")
	// ErrInvalidBounds is returned for non-positive canvas bounds and for
	// bounds so large that an element's far edge would overflow int.
	ErrInvalidBounds = errors.New("synth: canvas bounds must be positive and leave room for element sizes")
	// ErrInvalidSizeRange is returned when the size range is empty or
	// non-positive.
	ErrInvalidSizeRange = errors.New("synth: size range must be positive with min <= max")
)

// LayoutInfeasibleError reports that no free position was found for the
// element at Index within the configured attempt budget.
type LayoutInfeasibleError struct {
	Index    int
	Attempts int
}

func (e *LayoutInfeasibleError) Error() string {
	return fmt.Sprintf("synth: no free position for element %d after %d attempts", e.Index, e.Attempts)
}

func (e *LayoutInfeasibleError) Is(target error) bool {
	return target == ErrLayoutInfeasible
}
