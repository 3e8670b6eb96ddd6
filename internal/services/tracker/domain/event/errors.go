package event

import apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"

var (
	ErrTierMismatch  = apperrors.New(apperrors.CodeBodyTierMismatch, "event tier does not match the part")
	ErrPartSevered   = apperrors.New(apperrors.CodeBodyPartSevered, "severed parts cannot be edited")
	ErrUnknownEvent  = apperrors.New(apperrors.CodeBodyUnknownEvent, "unknown event")
	ErrInvalidAmount = apperrors.New(apperrors.CodeBodyInvalidAmount, "amount is out of range")
)
