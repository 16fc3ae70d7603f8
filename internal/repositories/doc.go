// Package repositories provides the local persistence layer.
//
// The only persisted client-side state is the pair of authentication secrets:
// the BYETZ bearer token and the upstream Plex token. [TokenRepository] stores
// them in SQLite under fixed well-known names, standing in for the secure
// keychain the mobile client uses. No other client-side persistence exists;
// feed and interaction state are in-memory only.
package repositories
