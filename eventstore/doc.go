// Package eventstore provides the core of a campus-events collection engine:
// an in-memory store of event records with a pluggable persistence backend,
// plus the pure derived views built on top of it.
//
// The package is split along the write and read paths:
//
//   - Store owns the canonical collection for the lifetime of a session and
//     exposes the validated mutations: Add, Update, Remove, ReplaceAll, Clear.
//   - Validate checks a candidate draft against all field and business rules
//     at once, returning every violation as a human-readable message.
//   - Search filters the collection against a user-supplied pattern, treating
//     it as a case-insensitive regular expression when it compiles and falling
//     back to plain substring matching when it does not. Highlight marks the
//     matching spans with the same fallback semantics.
//   - SortRecords orders a view by field and direction with per-field
//     comparison semantics; Summarize and ComputeWeeklyTrend produce the
//     dashboard aggregates.
//
// Persistence is injected through the Persistence interface; the
// storageengine subpackage provides implementations backed by BoltDB and
// SQLite. The store never touches rendering - it returns data and
// violations, nothing else.
//
// Common usage pattern:
//
//	engine, _ := storageengine.NewEngineFromBolt(db,
//		storageengine.WithSeedSource("data/seeds.json"))
//	_ = engine.SeedIfEmpty(ctx)
//
//	store, _ := eventstore.NewStore(engine)
//	_ = store.LoadFromStorage(ctx)
//
//	visible := eventstore.Search(store.List(), "robot|yoga")
//	visible = eventstore.SortRecords(visible, eventstore.SortByDate, eventstore.Ascending)
package eventstore
