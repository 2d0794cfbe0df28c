package services

import "errors"

// Common errors shared across services and the HTTP mapping layer.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business-rule errors
	ErrValidationFailed       = errors.New("validation failed")
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrRosterTooSmall         = errors.New("roster is too small for the chosen format")
	ErrRosterOddForDoubles    = errors.New("doubles tournaments require an even roster size")
	ErrRosterDuplicatePlayer  = errors.New("roster contains a duplicate player")
	ErrInvalidCourtCount      = errors.New("available courts must be at least 1")
	ErrInvalidMaxRounds       = errors.New("max rounds must be at least 1")
	ErrMaxRoundsNotSupported  = errors.New("max rounds only applies to round robin tournaments")
	ErrUnsupportedFormat      = errors.New("unsupported tournament format")
	ErrUnsupportedType        = errors.New("unsupported tournament type")
	ErrMatchNotInTournament   = errors.New("match does not belong to the tournament")
	ErrPasswordTooShort       = errors.New("password is too short")

	// Conflict errors
	ErrUserEmailConflict      = errors.New("email address is already in use")
	ErrTournamentNameConflict = errors.New("tournament name already exists")

	// Authentication and authorization errors
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Entity-specific not-found errors
	ErrUserNotFound       = errors.New("user not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")

	// Storage failures are reported generically; the cause is logged, not
	// shown to the end user.
	ErrTournamentCreateFailed = errors.New("failed to create tournament")
	ErrTournamentDeleteFailed = errors.New("failed to delete tournament")
)
