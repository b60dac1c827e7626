package eventstore

import (
	"cmp"
	"slices"
	"strings"
)

// SortField selects the comparison key for SortRecords.
type SortField string

const (
	SortByDate        SortField = "date"
	SortByDuration    SortField = "duration"
	SortByTitle       SortField = "title"
	SortByLocation    SortField = "location"
	SortByTag         SortField = "tag"
	SortByDescription SortField = "description"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortRecords returns a new slice ordered by the given field and direction.
// The sort is stable, so records with equal keys keep their input order.
//
// Comparison semantics per field:
//   - date: by the combined date+start-time instant, not the lexical date
//     string, so two events on the same day order by start time
//   - duration: numeric
//   - title, location, tag, description: case-insensitive lexical, with a
//     missing value treated as the empty string
func SortRecords(records EventRecords, field SortField, direction SortDirection) EventRecords {
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, func(a, b EventRecord) int {
		ordering := compareByField(a, b, field)
		if direction == Descending {
			ordering = -ordering
		}

		return ordering
	})

	return sorted
}

func compareByField(a EventRecord, b EventRecord, field SortField) int {
	switch field {
	case SortByDate:
		return a.StartsAt().Compare(b.StartsAt())

	case SortByDuration:
		return cmp.Compare(a.Duration, b.Duration)

	default:
		return strings.Compare(lexicalKey(a, field), lexicalKey(b, field))
	}
}

func lexicalKey(r EventRecord, field SortField) string {
	switch field {
	case SortByTitle:
		return strings.ToLower(r.Title)
	case SortByLocation:
		return strings.ToLower(r.Location)
	case SortByTag:
		return strings.ToLower(r.Tag)
	case SortByDescription:
		return strings.ToLower(r.Description)
	default:
		return ""
	}
}
