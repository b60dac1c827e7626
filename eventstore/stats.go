package eventstore

import (
	"time"
)

// DashboardSummary holds the headline numbers shown on the dashboard.
// It is always computed from the full collection, never from a filtered or
// sorted view.
type DashboardSummary struct {
	TotalEvents       int
	RoomsUsedToday    int
	TopCategory       string
	UpcomingWeekCount int
}

// Summarize computes the dashboard summary for the given moment:
//
//   - TotalEvents: size of the collection
//   - RoomsUsedToday: distinct display locations among events dated today,
//     so events without a location all share the "TBA" room
//   - TopCategory: the modal tag; ties go to the tag encountered first in
//     input order, which makes the result deterministic for a given
//     collection order. Empty string when the collection is empty.
//   - UpcomingWeekCount: events dated within the next 7 days, inclusive of
//     today
func Summarize(records EventRecords, now time.Time) DashboardSummary {
	today := now.Format(dateLayout)
	weekFrom := today
	weekUntil := now.AddDate(0, 0, 7).Format(dateLayout)

	rooms := make(map[string]struct{})
	tagCounts := make(map[string]int)
	tagOrder := make([]string, 0)
	upcoming := 0

	for _, record := range records {
		if record.Date == today {
			rooms[record.DisplayLocation()] = struct{}{}
		}

		if _, seen := tagCounts[record.Tag]; !seen {
			tagOrder = append(tagOrder, record.Tag)
		}
		tagCounts[record.Tag]++

		// ISO dates compare correctly as strings.
		if record.Date >= weekFrom && record.Date <= weekUntil {
			upcoming++
		}
	}

	topCategory := ""
	topCount := 0
	for _, tag := range tagOrder {
		if tagCounts[tag] > topCount {
			topCategory = tag
			topCount = tagCounts[tag]
		}
	}

	return DashboardSummary{
		TotalEvents:       len(records),
		RoomsUsedToday:    len(rooms),
		TopCategory:       topCategory,
		UpcomingWeekCount: upcoming,
	}
}

// TrendBucket is one day of the weekly trend.
type TrendBucket struct {
	Date    string
	Weekday time.Weekday
	Count   int
}

// WeeklyTrend is the event histogram for the current calendar week,
// Monday through Sunday. HasEvents is false when every bucket is zero,
// in which case the Busiest* fields are meaningless and the caller should
// report "no events this week" instead of a day.
type WeeklyTrend struct {
	Buckets        [7]TrendBucket
	BusiestDate    string
	BusiestWeekday time.Weekday
	BusiestCount   int
	HasEvents      bool
}

// ComputeWeeklyTrend buckets the collection into the 7 days of the week
// containing now, Monday start, regardless of where in the week today falls.
// The busiest day is the first day reaching the maximum count.
func ComputeWeeklyTrend(records EventRecords, now time.Time) WeeklyTrend {
	monday := startOfWeek(now)

	countsByDate := make(map[string]int)
	for _, record := range records {
		countsByDate[record.Date]++
	}

	var trend WeeklyTrend
	for i := range trend.Buckets {
		day := monday.AddDate(0, 0, i)
		date := day.Format(dateLayout)
		trend.Buckets[i] = TrendBucket{
			Date:    date,
			Weekday: day.Weekday(),
			Count:   countsByDate[date],
		}
	}

	for _, bucket := range trend.Buckets {
		if bucket.Count > trend.BusiestCount {
			trend.BusiestDate = bucket.Date
			trend.BusiestWeekday = bucket.Weekday
			trend.BusiestCount = bucket.Count
			trend.HasEvents = true
		}
	}

	return trend
}

// startOfWeek returns midnight of the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	return midnight.AddDate(0, 0, -daysSinceMonday)
}
