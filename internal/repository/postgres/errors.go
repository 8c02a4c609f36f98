package postgres

import (
	"errors"
	"strings"

	"github.com/lib/pq"

	"eventboard/internal/domain"
)

// Postgres error codes surfaced by the schema constraints.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeExclusionViolation  = "23P01"
	codeInvalidTextRepr     = "22P02"
)

// mapConstraintError translates pq constraint violations into domain
// sentinels so services and controllers never see driver errors for the
// known conflict cases. The exclusion constraint on event windows is the
// store-level backstop for the overlap check-then-act race; it surfaces
// here as ErrEventOverlap. Unknown violations pass through unchanged.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case codeUniqueViolation:
		switch pqErr.Constraint {
		case "competitions_type_event_key":
			return domain.ErrCompetitionTypeTaken
		case "competitors_competition_person_key":
			return domain.ErrAlreadyEnrolled
		case "persons_dni_key":
			return domain.ErrDuplicateDNI
		case "persons_email_key":
			return domain.ErrDuplicateEmail
		case "admins_username_key":
			return domain.ErrDuplicateUsername
		}
		return domain.ErrConflict
	case codeExclusionViolation:
		if pqErr.Constraint == "events_no_overlap" {
			return domain.ErrEventOverlap
		}
		return domain.ErrConflict
	case codeForeignKeyViolation:
		switch {
		case strings.Contains(pqErr.Constraint, "event_id"):
			return domain.ErrEventNotFound
		case strings.Contains(pqErr.Constraint, "competition_type_id"):
			return domain.ErrCompetitionTypeNotFound
		case strings.Contains(pqErr.Constraint, "competition_id"):
			return domain.ErrCompetitionNotFound
		case strings.Contains(pqErr.Constraint, "person_id"):
			return domain.ErrPersonNotFound
		}
		return domain.ErrNotFound
	case codeInvalidTextRepr:
		// Malformed UUID in a lookup reads as "no such row".
		return domain.ErrNotFound
	}
	return err
}
