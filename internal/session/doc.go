// Package session implements the client state engine: the session objects the
// presentation layer reads state from and calls operations on.
//
//   - [AuthSession] : the coarse application state machine gating everything else
//   - [FeedSession] : the growing clip sequence, playback cursor, and prefetch policy
//   - [SettingsSync] : debounced write-through for the preference record
//   - [TasteProfileSession] : the one-time multi-select taste setup flow
//   - [ProfileSession], [LibrarySession] : read-mostly account and library views
//
// Each session has a single logical owner and performs serialized
// self-mutation; the internal mutexes exist because loads and interaction
// submissions complete on background goroutines, not to support concurrent
// callers. Gateways are injected as narrow per-session interfaces so every
// session is testable against a fake.
//
// Failure policy: except for login, sessions swallow gateway errors at the
// boundary (logged, prior state kept), keeping last-known-good state available
// rather than surfacing transient failures.
package session
