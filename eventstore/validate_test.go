package eventstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventdeck/campus-events-store-go/eventstore"
	"github.com/eventdeck/campus-events-store-go/testutil"
)

func Test_Validate_ValidDraftHasNoViolations(t *testing.T) {
	violations := eventstore.Validate(testutil.ValidDraft(), testutil.ReferenceTime())

	assert.Empty(t, violations)
}

func Test_Validate_SingleRuleViolations(t *testing.T) {
	testCases := []struct {
		name              string
		mutate            func(*eventstore.EventDraft)
		expectedViolation string
	}{
		{
			name:              "empty title",
			mutate:            func(d *eventstore.EventDraft) { d.Title = "" },
			expectedViolation: eventstore.MsgTitleRequired,
		},
		{
			name:              "whitespace-only title",
			mutate:            func(d *eventstore.EventDraft) { d.Title = "   " },
			expectedViolation: eventstore.MsgTitleRequired,
		},
		{
			name:              "missing date",
			mutate:            func(d *eventstore.EventDraft) { d.Date = "" },
			expectedViolation: eventstore.MsgDateRequired,
		},
		{
			name:              "missing start time",
			mutate:            func(d *eventstore.EventDraft) { d.StartTime = "" },
			expectedViolation: eventstore.MsgStartTimeRequired,
		},
		{
			name:              "zero duration",
			mutate:            func(d *eventstore.EventDraft) { d.Duration = 0 },
			expectedViolation: eventstore.MsgDurationPositive,
		},
		{
			name:              "negative duration",
			mutate:            func(d *eventstore.EventDraft) { d.Duration = -30 },
			expectedViolation: eventstore.MsgDurationPositive,
		},
		{
			name:              "missing category",
			mutate:            func(d *eventstore.EventDraft) { d.Tag = "" },
			expectedViolation: eventstore.MsgCategoryRequired,
		},
		{
			name: "past-dated event",
			mutate: func(d *eventstore.EventDraft) {
				d.Date = "2025-10-14"
				d.StartTime = "13:00"
			},
			expectedViolation: eventstore.MsgEventInPast,
		},
		{
			name: "earlier today",
			mutate: func(d *eventstore.EventDraft) {
				d.Date = "2025-10-15"
				d.StartTime = "07:30"
			},
			expectedViolation: eventstore.MsgEventInPast,
		},
		{
			name:              "malformed start time",
			mutate:            func(d *eventstore.EventDraft) { d.StartTime = "25:00" },
			expectedViolation: eventstore.MsgStartTimeFormat,
		},
		{
			name:              "single-digit minutes",
			mutate:            func(d *eventstore.EventDraft) { d.StartTime = "12:5" },
			expectedViolation: eventstore.MsgStartTimeFormat,
		},
		{
			name:              "duration above one day",
			mutate:            func(d *eventstore.EventDraft) { d.Duration = 1441 },
			expectedViolation: eventstore.MsgDurationTooLong,
		},
		{
			name:              "title above 100 characters",
			mutate:            func(d *eventstore.EventDraft) { d.Title = strings.Repeat("a", 101) },
			expectedViolation: eventstore.MsgTitleTooLong,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft := testutil.ValidDraft(tc.mutate)

			violations := eventstore.Validate(draft, testutil.ReferenceTime())

			assert.Equal(t, []string{tc.expectedViolation}, violations)
		})
	}
}

func Test_Validate_BoundaryValuesAreAccepted(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*eventstore.EventDraft)
	}{
		{
			name:   "duration of exactly one day",
			mutate: func(d *eventstore.EventDraft) { d.Duration = 1440 },
		},
		{
			name:   "title of exactly 100 characters",
			mutate: func(d *eventstore.EventDraft) { d.Title = strings.Repeat("a", 100) },
		},
		{
			name:   "single-digit hour",
			mutate: func(d *eventstore.EventDraft) { d.StartTime = "9:30" },
		},
		{
			name: "later today",
			mutate: func(d *eventstore.EventDraft) {
				d.Date = "2025-10-15"
				d.StartTime = "08:30"
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft := testutil.ValidDraft(tc.mutate)

			violations := eventstore.Validate(draft, testutil.ReferenceTime())

			assert.Empty(t, violations)
		})
	}
}

func Test_Validate_CollectsAllViolationsInRuleOrder(t *testing.T) {
	draft := eventstore.EventDraft{
		Title:     strings.Repeat("x", 101),
		Date:      "2025-10-16",
		StartTime: "99:99",
		Duration:  2000,
		Tag:       "",
	}

	violations := eventstore.Validate(draft, testutil.ReferenceTime())

	assert.Equal(t, []string{
		eventstore.MsgCategoryRequired,
		eventstore.MsgStartTimeFormat,
		eventstore.MsgDurationTooLong,
		eventstore.MsgTitleTooLong,
	}, violations)
}

func Test_Validate_EmptyDraftFailsEveryRequiredRule(t *testing.T) {
	violations := eventstore.Validate(eventstore.EventDraft{}, testutil.ReferenceTime())

	assert.Equal(t, []string{
		eventstore.MsgTitleRequired,
		eventstore.MsgDateRequired,
		eventstore.MsgStartTimeRequired,
		eventstore.MsgDurationPositive,
		eventstore.MsgCategoryRequired,
	}, violations)
}

func Test_Validate_UnparsableDateSkipsPastCheck(t *testing.T) {
	draft := testutil.ValidDraft(func(d *eventstore.EventDraft) {
		d.Date = "not-a-date"
	})

	violations := eventstore.Validate(draft, testutil.ReferenceTime())

	assert.NotContains(t, violations, eventstore.MsgEventInPast)
}

func Test_ValidationFailedError_JoinsViolations(t *testing.T) {
	err := &eventstore.ValidationFailedError{
		Violations: []string{eventstore.MsgTitleRequired, eventstore.MsgDateRequired},
	}

	assert.Equal(t, "validation failed: Event title is required; Event date is required", err.Error())
}
