// Package storageengine implements the persistence side of the event
// collection: the whole collection is serialized as one JSON array and kept
// under a single storage key, trading per-record queries for a trivially
// consistent single-slot layout.
//
// The engine is constructed from one of several storage backends:
//
//   - NewEngineFromBolt: a BoltDB bucket (pure local key-value file)
//   - NewEngineFromSQLDB: a database/sql connection to SQLite
//   - NewEngineFromSQLX: a sqlx connection to SQLite
//
// All backends expose the same three operations: Load returns the persisted
// collection or reports absence, Save overwrites the slot with the full
// collection, and SeedIfEmpty populates a fresh slot from a bundled seed
// document. Seed-source problems degrade to an empty collection with a
// logged warning; only storage failures are returned as errors.
package storageengine
