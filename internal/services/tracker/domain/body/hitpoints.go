package body

import (
	"fmt"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
)

// InitialHitPoints holds the per-part maxima loaded at session start. It is
// the clamp ceiling for healing cascades and the reset baseline.
type InitialHitPoints struct {
	values [PartCount]int
}

// NewInitialHitPoints builds maxima from a mapping that must name every part
// with a positive value.
func NewInitialHitPoints(values map[Part]int) (InitialHitPoints, error) {
	var initial InitialHitPoints
	for _, part := range Parts() {
		value, ok := values[part]
		if !ok {
			return InitialHitPoints{}, apperrors.WithMetadata(apperrors.CodeBodyInvalidInitialHP,
				fmt.Sprintf("initial hit points missing for %s", part),
				map[string]string{"Part": part.String()})
		}
		if value <= 0 {
			return InitialHitPoints{}, apperrors.WithMetadata(apperrors.CodeBodyInvalidInitialHP,
				fmt.Sprintf("initial hit points for %s must be positive, got %d", part, value),
				map[string]string{"Part": part.String(), "Value": fmt.Sprint(value)})
		}
		initial.values[part] = value
	}
	for part := range values {
		if !part.Valid() {
			return InitialHitPoints{}, ErrUnknownPart
		}
	}
	return initial, nil
}

// Max returns the initial value of p, or 0 for unknown parts.
func (h InitialHitPoints) Max(p Part) int {
	if !p.Valid() {
		return 0
	}
	return h.values[p]
}

// Sum returns the total of all maxima, the highest reachable Total.
func (h InitialHitPoints) Sum() int {
	sum := 0
	for _, value := range h.values {
		sum += value
	}
	return sum
}

// IsZero reports whether h was never initialized.
func (h InitialHitPoints) IsZero() bool {
	return h == InitialHitPoints{}
}
