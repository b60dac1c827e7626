package eventstore

import (
	"errors"
)

var ErrNilPersistence = errors.New("nil persistence supplied")
var ErrNilDatabaseConnection = errors.New("nil database connection supplied")
var ErrEmptyStorageKey = errors.New("empty storageKey supplied")
var ErrNotFound = errors.New("no event with the given id exists")
var ErrEmptyImport = errors.New("no valid events found in the import payload")
var ErrLoadingCollectionFailed = errors.New("loading the event collection failed")
var ErrSavingCollectionFailed = errors.New("saving the event collection failed")
var ErrEncodingCollectionFailed = errors.New("encoding the event collection failed")
var ErrDecodingCollectionFailed = errors.New("decoding the stored event collection failed")
