// Package testutil provides fixture builders and deterministic stand-ins
// (clock, id generator) shared by the test suites.
package testutil

import (
	"fmt"
	"time"

	"github.com/eventdeck/campus-events-store-go/eventstore"
)

// ReferenceTime is a fixed Wednesday morning used as "now" in tests, so
// date-relative behavior (past check, dashboard windows, weekly trend) is
// reproducible.
func ReferenceTime() time.Time {
	return time.Date(2025, time.October, 15, 8, 0, 0, 0, time.Local)
}

// FixedClock returns a clock that always reports the given instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time {
		return at
	}
}

// SteppingClock returns a clock that starts at the given instant and advances
// by step on every call, so consecutive timestamps are strictly ordered.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	current := start

	return func() time.Time {
		at := current
		current = current.Add(step)

		return at
	}
}

// SequentialIDs returns an id generator producing prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	counter := 0

	return func() string {
		counter++
		return fmt.Sprintf("%s-%d", prefix, counter)
	}
}

// ValidDraft builds a draft that passes validation relative to ReferenceTime,
// with optional mutations applied on top.
func ValidDraft(mutations ...func(*eventstore.EventDraft)) eventstore.EventDraft {
	draft := eventstore.EventDraft{
		Title:       "Robotics Club Showcase",
		Date:        "2025-10-16",
		StartTime:   "13:00",
		Duration:    90,
		Location:    "Robotics Lab",
		Tag:         "Extracurricular",
		Description: "Showcase of student-built robots",
	}

	for _, mutate := range mutations {
		mutate(&draft)
	}

	return draft
}

// Record builds a well-formed stored record with the given id, with optional
// mutations applied on top.
func Record(id string, mutations ...func(*eventstore.EventRecord)) eventstore.EventRecord {
	record := eventstore.EventRecord{
		ID:          id,
		Title:       "Industry Mentorship Session",
		Date:        "2025-10-16",
		StartTime:   "10:00",
		Duration:    60,
		Location:    "Leadership Center",
		Tag:         "Academics",
		Description: "Career guidance with industry professionals",
		CreatedAt:   ReferenceTime(),
		UpdatedAt:   ReferenceTime(),
	}

	for _, mutate := range mutations {
		mutate(&record)
	}

	return record
}
