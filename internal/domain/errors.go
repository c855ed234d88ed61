package domain

import (
	"errors"
	"fmt"
)

// Validation errors reported back to the user
var (
	ErrMissingArgument     = errors.New("missing argument")
	ErrMissingDate         = fmt.Errorf("%w: date", ErrMissingArgument)
	ErrMissingDescription  = fmt.Errorf("%w: description", ErrMissingArgument)
	ErrMissingRemoveTarget = fmt.Errorf("%w: date or description", ErrMissingArgument)

	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrInvalidCalendarDate = errors.New("invalid day or month")
	ErrDescriptionTooLong  = errors.New("description too long")
	ErrUnknownSubcommand   = errors.New("unknown subcommand")
)
