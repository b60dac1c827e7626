// Package logadapters provides ready-made implementations of the
// eventstore.Logger interface for common logging backends, so users get
// plug-and-play logging without implementing the interface themselves.
package logadapters
