package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and mapped to HTTP status codes in
// the delivery layer.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("operation not allowed for the current user")
	ErrConflict  = errors.New("resource conflict")

	ErrInvalidCredentials = errors.New("invalid credentials")

	// Scheduling rules. Each failed rule gets its own sentinel so the
	// delivery layer can name what was violated.
	ErrEventEndBeforeStart = errors.New("event end must not be before its start")
	ErrEventStartInPast    = errors.New("event start must not be in the past")
	ErrEventOverlap        = errors.New("event window overlaps an existing event")

	ErrCompetitionOutOfEventRange = errors.New("competition window is out of the event range")
	ErrCompetitionTypeTaken       = errors.New("event already has a competition of this type")
	ErrEnrollmentClosed           = errors.New("enrollment is closed for this competition")
	ErrUnsupportedImageType       = errors.New("unsupported image content type")
	ErrAlreadyEnrolled            = errors.New("person is already enrolled in this competition")

	// Entity-specific variants wrap ErrNotFound so callers can match either
	// the precise error or the broad class.
	ErrEventNotFound           = fmt.Errorf("event %w", ErrNotFound)
	ErrCompetitionTypeNotFound = fmt.Errorf("competition type %w", ErrNotFound)
	ErrCompetitionNotFound     = fmt.Errorf("competition %w", ErrNotFound)
	ErrCompetitorNotFound      = fmt.Errorf("competitor %w", ErrNotFound)
	ErrPersonNotFound          = fmt.Errorf("person %w", ErrNotFound)
	ErrAdminNotFound           = fmt.Errorf("admin %w", ErrNotFound)

	ErrDuplicateDNI      = errors.New("dni already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)
