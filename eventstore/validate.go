package eventstore

import (
	"strings"
	"time"
)

// Violation messages, in the order Validate emits them.
const (
	MsgTitleRequired     = "Event title is required"
	MsgDateRequired      = "Event date is required"
	MsgStartTimeRequired = "Start time is required"
	MsgDurationPositive  = "Duration must be a positive number"
	MsgCategoryRequired  = "Category is required"
	MsgEventInPast       = "Event cannot be scheduled in the past"
	MsgStartTimeFormat   = "Start time must be in HH:MM format (24-hour)"
	MsgDurationTooLong   = "Duration cannot exceed 24 hours (1440 minutes)"
	MsgTitleTooLong      = "Title cannot exceed 100 characters"
)

// ValidationFailedError carries the full list of violations for a rejected
// draft, so the caller can show the user every problem at once.
type ValidationFailedError struct {
	Violations []string
}

func (e *ValidationFailedError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Validate checks a candidate draft against all field and business rules.
// Every rule is evaluated - no short-circuiting - and the result is the
// ordered list of violation messages; an empty list means the draft is valid.
//
// The past-dated check (rule 6 of the business rules) compares the combined
// date and start time against the supplied now, so callers and tests control
// the clock.
func Validate(draft EventDraft, now time.Time) []string {
	violations := make([]string, 0)

	if strings.TrimSpace(draft.Title) == "" {
		violations = append(violations, MsgTitleRequired)
	}

	if draft.Date == "" {
		violations = append(violations, MsgDateRequired)
	}

	if draft.StartTime == "" {
		violations = append(violations, MsgStartTimeRequired)
	}

	if draft.Duration <= 0 {
		violations = append(violations, MsgDurationPositive)
	}

	if strings.TrimSpace(draft.Tag) == "" {
		violations = append(violations, MsgCategoryRequired)
	}

	if draft.Date != "" && draft.StartTime != "" {
		startsAt, err := time.ParseInLocation(dateTimeLayout, draft.Date+"T"+draft.StartTime, now.Location())
		if err == nil && startsAt.Before(now) {
			violations = append(violations, MsgEventInPast)
		}
	}

	if draft.StartTime != "" && !timePattern.MatchString(draft.StartTime) {
		violations = append(violations, MsgStartTimeFormat)
	}

	if draft.Duration > maxDurationMinutes {
		violations = append(violations, MsgDurationTooLong)
	}

	if len([]rune(draft.Title)) > maxTitleLength {
		violations = append(violations, MsgTitleTooLong)
	}

	return violations
}

const maxDurationMinutes = 1440
const maxTitleLength = 100
