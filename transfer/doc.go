// Package transfer implements import and export of a full event collection:
// a JSON document format that round-trips through Store.ReplaceAll, a CSV
// export for spreadsheets, and an iCalendar export for calendar clients.
//
// The package only converts between bytes and records; writing files and
// picking filenames is the caller's business.
package transfer
