package transfer

import (
	"encoding/json"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/eventdeck/campus-events-store-go/eventstore"
)

// DocumentVersion is the format version stamped into exported documents.
const DocumentVersion = "1.0"

var ErrMissingEventsArray = errors.New("invalid file format: events array not found")
var ErrDecodingDocumentFailed = errors.New("decoding the import document failed")
var ErrEncodingDocumentFailed = errors.New("encoding the export document failed")

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the JSON interchange envelope for a full event collection.
type Document struct {
	Events      eventstore.EventRecords `json:"events"`
	ExportDate  time.Time               `json:"exportDate"`
	Version     string                  `json:"version"`
	TotalEvents int                     `json:"totalEvents"`
}

// ExportJSON renders the collection as an indented interchange document.
func ExportJSON(records eventstore.EventRecords, now time.Time) ([]byte, error) {
	if records == nil {
		records = make(eventstore.EventRecords, 0)
	}

	doc := Document{
		Events:      records,
		ExportDate:  now,
		Version:     DocumentVersion,
		TotalEvents: len(records),
	}

	raw, err := codec.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Join(ErrEncodingDocumentFailed, err)
	}

	return raw, nil
}

// ImportJSON extracts the event records from an interchange document.
// It only enforces the envelope shape - the document must carry an events
// array - and returns the records as-is; filtering out malformed records
// (and rejecting imports with none left) is Store.ReplaceAll's job.
func ImportJSON(data []byte) (eventstore.EventRecords, error) {
	var envelope struct {
		Events json.RawMessage `json:"events"`
	}

	if err := codec.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Join(ErrDecodingDocumentFailed, err)
	}

	if len(envelope.Events) == 0 {
		return nil, ErrMissingEventsArray
	}

	var records eventstore.EventRecords
	if err := codec.Unmarshal(envelope.Events, &records); err != nil {
		return nil, ErrMissingEventsArray
	}

	// A JSON null decodes without error but is not an events array.
	if records == nil {
		return nil, ErrMissingEventsArray
	}

	return records, nil
}
