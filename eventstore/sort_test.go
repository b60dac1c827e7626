package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventdeck/campus-events-store-go/eventstore"
	"github.com/eventdeck/campus-events-store-go/testutil"
)

func sortedIDs(records eventstore.EventRecords, field eventstore.SortField, direction eventstore.SortDirection) []string {
	sorted := eventstore.SortRecords(records, field, direction)

	ids := make([]string, 0, len(sorted))
	for _, record := range sorted {
		ids = append(ids, record.ID)
	}

	return ids
}

func Test_SortRecords_ByDuration(t *testing.T) {
	records := eventstore.EventRecords{
		testutil.Record("r1", func(r *eventstore.EventRecord) { r.Duration = 90 }),
		testutil.Record("r2", func(r *eventstore.EventRecord) { r.Duration = 30 }),
		testutil.Record("r3", func(r *eventstore.EventRecord) { r.Duration = 60 }),
	}

	assert.Equal(t, []string{"r2", "r3", "r1"},
		sortedIDs(records, eventstore.SortByDuration, eventstore.Ascending))
	assert.Equal(t, []string{"r1", "r3", "r2"},
		sortedIDs(records, eventstore.SortByDuration, eventstore.Descending))
}

func Test_SortRecords_ByDateOrdersSameDayByStartTime(t *testing.T) {
	records := eventstore.EventRecords{
		testutil.Record("late", func(r *eventstore.EventRecord) {
			r.Date = "2025-10-16"
			r.StartTime = "16:00"
		}),
		testutil.Record("next-day", func(r *eventstore.EventRecord) {
			r.Date = "2025-10-17"
			r.StartTime = "07:00"
		}),
		testutil.Record("early", func(r *eventstore.EventRecord) {
			r.Date = "2025-10-16"
			r.StartTime = "09:00"
		}),
	}

	assert.Equal(t, []string{"early", "late", "next-day"},
		sortedIDs(records, eventstore.SortByDate, eventstore.Ascending))
}

func Test_SortRecords_ByTitleIsCaseInsensitive(t *testing.T) {
	records := eventstore.EventRecords{
		testutil.Record("r1", func(r *eventstore.EventRecord) { r.Title = "yoga session" }),
		testutil.Record("r2", func(r *eventstore.EventRecord) { r.Title = "Basketball Finals" }),
		testutil.Record("r3", func(r *eventstore.EventRecord) { r.Title = "robotics showcase" }),
	}

	assert.Equal(t, []string{"r2", "r3", "r1"},
		sortedIDs(records, eventstore.SortByTitle, eventstore.Ascending))
}

func Test_SortRecords_IsStableForEqualKeys(t *testing.T) {
	records := eventstore.EventRecords{
		testutil.Record("first", func(r *eventstore.EventRecord) { r.Tag = "Academics" }),
		testutil.Record("second", func(r *eventstore.EventRecord) { r.Tag = "academics" }),
		testutil.Record("third", func(r *eventstore.EventRecord) { r.Tag = "Academics" }),
	}

	assert.Equal(t, []string{"first", "second", "third"},
		sortedIDs(records, eventstore.SortByTag, eventstore.Ascending))
}

func Test_SortRecords_UnknownFieldKeepsInputOrder(t *testing.T) {
	records := eventstore.EventRecords{
		testutil.Record("r1"),
		testutil.Record("r2"),
		testutil.Record("r3"),
	}

	assert.Equal(t, []string{"r1", "r2", "r3"},
		sortedIDs(records, eventstore.SortField("bogus"), eventstore.Ascending))
}

func Test_SortRecords_DoesNotMutateTheInput(t *testing.T) {
	records := eventstore.EventRecords{
		testutil.Record("r1", func(r *eventstore.EventRecord) { r.Duration = 90 }),
		testutil.Record("r2", func(r *eventstore.EventRecord) { r.Duration = 30 }),
	}

	_ = eventstore.SortRecords(records, eventstore.SortByDuration, eventstore.Ascending)

	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, "r2", records[1].ID)
}
