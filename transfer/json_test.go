package transfer_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdeck/campus-events-store-go/eventstore"
	"github.com/eventdeck/campus-events-store-go/testutil"
	"github.com/eventdeck/campus-events-store-go/transfer"
)

func Test_ExportJSON_WritesTheInterchangeEnvelope(t *testing.T) {
	records := eventstore.EventRecords{
		testutil.Record("r1"),
		testutil.Record("r2"),
	}
	exportedAt := time.Date(2025, time.October, 20, 12, 0, 0, 0, time.UTC)

	raw, err := transfer.ExportJSON(records, exportedAt)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "events")
	assert.Contains(t, doc, "exportDate")
	assert.JSONEq(t, `"1.0"`, string(doc["version"]))
	assert.JSONEq(t, `2`, string(doc["totalEvents"]))
}

func Test_ExportJSON_NilCollectionExportsAnEmptyArray(t *testing.T) {
	raw, err := transfer.ExportJSON(nil, time.Now())
	require.NoError(t, err)

	var doc transfer.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.NotNil(t, doc.Events)
	assert.Empty(t, doc.Events)
	assert.Equal(t, 0, doc.TotalEvents)
}

func Test_ExportJSON_ImportJSON_RoundTripPreservesRecords(t *testing.T) {
	records := eventstore.EventRecords{
		testutil.Record("r1", func(r *eventstore.EventRecord) {
			r.Title = "Basketball Finals"
			r.Location = ""
			r.Description = ""
		}),
		testutil.Record("r2", func(r *eventstore.EventRecord) {
			r.Tag = "Games&Fun"
		}),
	}

	raw, err := transfer.ExportJSON(records, time.Date(2025, time.October, 20, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	imported, err := transfer.ImportJSON(raw)
	require.NoError(t, err)

	require.Len(t, imported, 2)
	assert.Equal(t, "r1", imported[0].ID)
	assert.Equal(t, "Basketball Finals", imported[0].Title)
	assert.Equal(t, "", imported[0].Location)
	assert.Equal(t, "r2", imported[1].ID)
	assert.Equal(t, "Games&Fun", imported[1].Tag)
	assert.True(t, imported[0].CreatedAt.Equal(records[0].CreatedAt))
}

func Test_ImportJSON_RejectsDocumentsWithoutAnEventsArray(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "empty object", data: `{}`},
		{name: "events is not an array", data: `{"events": "nope"}`},
		{name: "events is null", data: `{"events": null}`},
		{name: "different envelope", data: `{"items": []}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transfer.ImportJSON([]byte(tc.data))

			assert.ErrorIs(t, err, transfer.ErrMissingEventsArray)
		})
	}
}

func Test_ImportJSON_RejectsMalformedJSON(t *testing.T) {
	_, err := transfer.ImportJSON([]byte(`{not json`))

	assert.ErrorIs(t, err, transfer.ErrDecodingDocumentFailed)
}

func Test_ImportJSON_EmptyEventsArrayIsStillAValidEnvelope(t *testing.T) {
	records, err := transfer.ImportJSON([]byte(`{"events": []}`))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_ImportJSON_PassesMalformedRecordsThrough(t *testing.T) {
	// Dropping malformed records is the store's job on ReplaceAll, not the
	// decoder's.
	data := `{"events": [{"id": "x", "title": "", "date": "bogus"}]}`

	records, err := transfer.ImportJSON([]byte(data))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].IsWellFormed())
}
