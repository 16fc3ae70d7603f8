package repositories

import (
	"database/sql"
	"fmt"
)

// Well-known names the two secrets are stored under. Losing either forces a
// fresh login, so they are always saved and cleared as a pair.
const (
	KeyAccessToken = "access_token"
	KeyPlexToken   = "plex_token"
)

// TokenRepository persists authentication secrets in the local database.
//
// Reads are deliberately infallible: a missing or unreadable token is a valid
// unauthenticated state, not an error.
type TokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new TokenRepository with the given database connection.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// save upserts a secret under the given well-known name.
func (r *TokenRepository) save(name, value string) error {
	query := `
		INSERT INTO tokens (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, name, value); err != nil {
		return fmt.Errorf("failed to save token %s: %w", name, err)
	}
	return nil
}

// get retrieves a secret by name; false means no usable value is stored.
func (r *TokenRepository) get(name string) (string, bool) {
	var value string
	err := r.db.QueryRow("SELECT value FROM tokens WHERE name = ?", name).Scan(&value)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// SaveAccessToken persists the BYETZ bearer token.
func (r *TokenRepository) SaveAccessToken(token string) error {
	return r.save(KeyAccessToken, token)
}

// SavePlexToken persists the upstream Plex token.
func (r *TokenRepository) SavePlexToken(token string) error {
	return r.save(KeyPlexToken, token)
}

// AccessToken returns the stored bearer token, if any.
func (r *TokenRepository) AccessToken() (string, bool) {
	return r.get(KeyAccessToken)
}

// PlexToken returns the stored upstream Plex token, if any.
func (r *TokenRepository) PlexToken() (string, bool) {
	return r.get(KeyPlexToken)
}

// Clear removes all stored secrets.
func (r *TokenRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM tokens"); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}
