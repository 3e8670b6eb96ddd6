package body

import apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"

var (
	ErrUnknownPart       = apperrors.New(apperrors.CodeBodyUnknownPart, "unknown body part")
	ErrUnknownTier       = apperrors.New(apperrors.CodeBodyUnknownTier, "unknown cascade tier")
	ErrNotSeverable      = apperrors.New(apperrors.CodeBodyNotSeverable, "only limbs can be severed")
	ErrInvalidInitialHP  = apperrors.New(apperrors.CodeBodyInvalidInitialHP, "initial hit points must be positive for every part")
	ErrValueAboveMaximum = apperrors.New(apperrors.CodeBodyValueAboveMaximum, "value exceeds the part's initial hit points")
	ErrValueBelowMinimum = apperrors.New(apperrors.CodeBodyValueBelowMinimum, "value is below the lowest allowed edit")
)
