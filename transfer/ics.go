package transfer

import (
	ical "github.com/arran4/golang-ical"

	"github.com/eventdeck/campus-events-store-go/eventstore"
)

// ExportICS renders the collection as an iCalendar document with one VEVENT
// per record, so the collection can be subscribed to from calendar clients.
// Records whose date or start time does not parse are skipped - they cannot
// carry a DTSTART and calendar clients reject them.
func ExportICS(records eventstore.EventRecords) []byte {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, record := range records {
		startsAt := record.StartsAt()
		if startsAt.IsZero() {
			continue
		}

		event := cal.AddEvent(record.ID)
		event.SetSummary(record.Title)
		event.SetLocation(record.DisplayLocation())
		event.SetStartAt(startsAt)
		event.SetEndAt(record.EndsAt())

		if record.Description != "" {
			event.SetDescription(record.Description)
		}

		if !record.CreatedAt.IsZero() {
			event.SetCreatedTime(record.CreatedAt)
		}

		if !record.UpdatedAt.IsZero() {
			event.SetDtStampTime(record.UpdatedAt)
			event.SetModifiedAt(record.UpdatedAt)
		}
	}

	return []byte(cal.Serialize())
}
