package eventstore

import (
	"regexp"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"

	// MissingLocationLabel is what an absent location reads as for display,
	// search, and aggregation.
	MissingLocationLabel = "TBA"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// EventRecords is an alias type for a slice of EventRecord.
type EventRecords = []EventRecord

// EventRecord is the sole entity managed by the Store.
//
// ID is assigned at creation and immutable thereafter; CreatedAt and
// UpdatedAt are stamped by the Store, never by the caller. The JSON shape
// matches the persisted collection layout and the import/export documents.
type EventRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	Duration    int       `json:"duration"`
	Location    string    `json:"location,omitempty"`
	Tag         string    `json:"tag"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventDraft carries the caller-supplied fields for Add and Update.
// Everything the Store stamps itself (id, timestamps) is absent here.
type EventDraft struct {
	Title       string
	Date        string
	StartTime   string
	Duration    int
	Location    string
	Tag         string
	Description string
}

// StartsAt combines Date and StartTime into a point in time.
// Returns the zero time if either part does not parse.
func (r EventRecord) StartsAt() time.Time {
	startsAt, err := time.ParseInLocation(dateTimeLayout, r.Date+"T"+r.StartTime, time.Local)
	if err != nil {
		return time.Time{}
	}

	return startsAt
}

// EndsAt is StartsAt plus the duration.
// Returns the zero time if StartsAt does not parse.
func (r EventRecord) EndsAt() time.Time {
	startsAt := r.StartsAt()
	if startsAt.IsZero() {
		return time.Time{}
	}

	return startsAt.Add(time.Duration(r.Duration) * time.Minute)
}

// DisplayLocation returns the location, or MissingLocationLabel when none is set.
func (r EventRecord) DisplayLocation() string {
	if strings.TrimSpace(r.Location) == "" {
		return MissingLocationLabel
	}

	return r.Location
}

// IsWellFormed reports whether a record satisfies the minimal stored shape
// required for import: title, date (ISO), start time, positive duration and
// tag must all be present. Used by Store.ReplaceAll to drop malformed
// entries from an import payload.
func (r EventRecord) IsWellFormed() bool {
	if strings.TrimSpace(r.Title) == "" {
		return false
	}

	if !datePattern.MatchString(r.Date) {
		return false
	}

	if strings.TrimSpace(r.StartTime) == "" {
		return false
	}

	if r.Duration <= 0 {
		return false
	}

	if strings.TrimSpace(r.Tag) == "" {
		return false
	}

	return true
}

var categoryKeyPattern = regexp.MustCompile(`[^a-z0-9]`)

// Canonical category keys produced by NormalizeCategory.
const (
	CategoryAcademics       = "academics"
	CategoryWellness        = "wellness"
	CategoryGames           = "games"
	CategoryMission         = "mission"
	CategoryExtracurricular = "extracurricular"
	CategoryDefault         = "default"
)

// NormalizeCategory maps a free-text category label to a canonical badge key.
// It absorbs the spelling variants that exist in historical data, so
// "Games&Fun", "games fun" and "Games" all classify the same.
func NormalizeCategory(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	key = strings.ReplaceAll(key, "&", "and")
	key = categoryKeyPattern.ReplaceAllString(key, "")

	switch key {
	case "academics":
		return CategoryAcademics
	case "wellnessactivites", "wellnessactivities", "wellnessactivitiy":
		return CategoryWellness
	case "gamesandfun", "gamesfun", "games":
		return CategoryGames
	case "missioncurationprograms", "missioncuration", "missioncurationprogram":
		return CategoryMission
	case "extracalcular", "extracurricular", "extracurriculars":
		return CategoryExtracurricular
	default:
		return CategoryDefault
	}
}
