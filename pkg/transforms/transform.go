package transforms

import "fmt"

// A Transform advances an iterated complex value by one step.
//
// Implementations must be pure value types: Next may not keep state between
// calls and must be defined for every finite z and c.
type Transform interface {
	Next(z complex128, c complex128) complex128
}

// ByID returns the transform for a numeric selector, matching the CLI
// numbering: 1 is z²+c, 2 is z³+c.
func ByID(id int) (Transform, error) {
	switch id {
	case 1:
		return Quadratic{}, nil
	case 2:
		return Cubic{}, nil
	default:
		return nil, fmt.Errorf("unknown function id %d: must be 1 (quadratic) or 2 (cubic)", id)
	}
}
