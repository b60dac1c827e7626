package transfer

import (
	"strconv"
	"strings"

	"github.com/eventdeck/campus-events-store-go/eventstore"
)

// CSVHeader is the header row of the CSV export.
const CSVHeader = "Title,Date,Start Time,Duration,Location,Category,Description"

// ExportCSV renders the collection as CSV with one row per event.
// Free-text columns (title, location, description) are always
// double-quoted with embedded quotes doubled; the structured columns
// (date, start time, duration, category) are written bare.
func ExportCSV(records eventstore.EventRecords) []byte {
	var b strings.Builder

	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for _, record := range records {
		row := []string{
			quoteField(record.Title),
			record.Date,
			record.StartTime,
			strconv.Itoa(record.Duration),
			quoteField(record.Location),
			record.Tag,
			quoteField(record.Description),
		}

		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
