package models

import "github.com/google/uuid"

// Clip represents a playable excerpt of a media item from the feed.
//
// The composite score is an opaque ordering hint from the server; the client
// never recomputes it.
type Clip struct {
	ID             uuid.UUID `json:"id"`
	MediaID        string    `json:"media_id"`
	Title          string    `json:"title"`
	SeasonEpisode  string    `json:"season_episode"`
	StartTimeMs    int       `json:"start_time_ms"`
	EndTimeMs      int       `json:"end_time_ms"`
	DurationMs     int       `json:"duration_ms"`
	CompositeScore float64   `json:"composite_score"`
	GenreTags      []string  `json:"genre_tags"`
	Actors         []string  `json:"actors"`
	Director       string    `json:"director"`
	Decade         string    `json:"decade"`
	MoodTags       []string  `json:"mood_tags"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	StreamURL      string    `json:"stream_url"`
	CreatedAt      string    `json:"created_at"`
}

// FeedPage represents one page of the server-ordered clip feed.
type FeedPage struct {
	Clips   []Clip `json:"clips"`
	HasMore bool   `json:"has_more"`
}

// ActionType enumerates the interaction kinds the backend accepts.
type ActionType string

const (
	ActionLike          ActionType = "like"
	ActionDislike       ActionType = "dislike"
	ActionSave          ActionType = "save"
	ActionSkip          ActionType = "skip"
	ActionWatchComplete ActionType = "watch_complete"
)

// InteractionRequest represents a single user interaction submitted to the backend.
//
// The session ID groups interactions server-side; it is fixed for the lifetime
// of one feed session.
type InteractionRequest struct {
	ClipID          uuid.UUID  `json:"clip_id"`
	Action          ActionType `json:"action"`
	WatchDurationMs *int       `json:"watch_duration_ms,omitempty"`
	SessionID       uuid.UUID  `json:"session_id"`
}

// InteractionResponse is the server's acknowledgement of a recorded interaction.
// The client never reconciles the assigned ID back into local state.
type InteractionResponse struct {
	ID        uuid.UUID `json:"id"`
	ClipID    uuid.UUID `json:"clip_id"`
	Action    string    `json:"action"`
	CreatedAt string    `json:"created_at"`
}

// AuthResponse is returned by the Plex token exchange.
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
}

// UserProfile represents the authenticated user's account summary.
type UserProfile struct {
	ID                uuid.UUID `json:"id"`
	PlexUsername      string    `json:"plex_username"`
	PlexEmail         string    `json:"plex_email"`
	PlexThumb         string    `json:"plex_thumb"`
	TotalLikes        int       `json:"total_likes"`
	TotalSaves        int       `json:"total_saves"`
	TotalClipsWatched int       `json:"total_clips_watched"`
	CreatedAt         string    `json:"created_at"`
}

// UserSettings is the single mutable preference record, last-write-wins on both sides.
type UserSettings struct {
	SubtitleOverlay       bool   `json:"subtitle_overlay"`
	ContentMaturityFilter string `json:"content_maturity_filter"`
	ClipQuality           string `json:"clip_quality"`
	NotificationsEnabled  bool   `json:"notifications_enabled"`
}

// LibraryStatus reports the Plex server's reachability and per-library processing state.
type LibraryStatus struct {
	ServerName      string          `json:"server_name"`
	ServerReachable bool            `json:"server_reachable"`
	Libraries       []LibraryDetail `json:"libraries"`
}

// LibraryDetail describes one Plex library section.
type LibraryDetail struct {
	ID                   uuid.UUID `json:"id"`
	LibraryTitle         string    `json:"library_title"`
	LibraryType          string    `json:"library_type"`
	Enabled              bool      `json:"enabled"`
	TotalItems           int       `json:"total_items"`
	ProcessedItems       int       `json:"processed_items"`
	ProcessingPercentage float64   `json:"processing_percentage"`
	LastScanned          string    `json:"last_scanned"`
}

// TasteProfileTitle is a candidate title offered during one-time taste setup.
type TasteProfileTitle struct {
	MediaID   string   `json:"media_id"`
	Title     string   `json:"title"`
	Year      *int     `json:"year"`
	PosterURL string   `json:"poster_url"`
	GenreTags []string `json:"genre_tags"`
	MediaType string   `json:"media_type"`
}

// TasteProfileSelection is the submission body for the chosen subset of titles.
type TasteProfileSelection struct {
	Selections []TasteProfileTitle `json:"selections"`
}
