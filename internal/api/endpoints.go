// Endpoint wrappers over the BYETZ backend REST contract.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/byetz/internal/models"
	"github.com/google/uuid"
)

// DefaultPageSize is the feed page size requested when the caller passes a non-positive limit.
const DefaultPageSize = 20

type plexAuthBody struct {
	PlexToken string `json:"plex_token"`
}

type libraryToggleBody struct {
	LibraryID uuid.UUID `json:"library_id"`
	Enabled   bool      `json:"enabled"`
}

// AuthenticatePlex exchanges an upstream Plex token for a BYETZ bearer token.
func (c *Client) AuthenticatePlex(ctx context.Context, plexToken string) (models.AuthResponse, error) {
	return request[models.AuthResponse](ctx, c, http.MethodPost, "/auth/plex", plexAuthBody{PlexToken: plexToken})
}

// Feed retrieves one page of the clip feed.
func (c *Client) Feed(ctx context.Context, limit, offset int) (models.FeedPage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	path := fmt.Sprintf("/feed?limit=%d&offset=%d", limit, offset)
	return request[models.FeedPage](ctx, c, http.MethodGet, path, nil)
}

// SubmitInteraction records a single user interaction.
func (c *Client) SubmitInteraction(ctx context.Context, interaction models.InteractionRequest) (models.InteractionResponse, error) {
	return request[models.InteractionResponse](ctx, c, http.MethodPost, "/interactions", interaction)
}

// Profile retrieves the authenticated user's account summary.
func (c *Client) Profile(ctx context.Context) (models.UserProfile, error) {
	return request[models.UserProfile](ctx, c, http.MethodGet, "/profile", nil)
}

// SavedClips retrieves the clips the user has saved.
func (c *Client) SavedClips(ctx context.Context) ([]models.Clip, error) {
	return request[[]models.Clip](ctx, c, http.MethodGet, "/profile/saved", nil)
}

// LibraryStatus retrieves the Plex server and library processing state.
func (c *Client) LibraryStatus(ctx context.Context) (models.LibraryStatus, error) {
	return request[models.LibraryStatus](ctx, c, http.MethodGet, "/library/status", nil)
}

// DiscoverLibraries asks the backend to discover Plex libraries.
func (c *Client) DiscoverLibraries(ctx context.Context) error {
	_, err := request[map[string]string](ctx, c, http.MethodPost, "/library/discover", nil)
	return err
}

// ProcessLibraries asks the backend to start processing enabled libraries.
func (c *Client) ProcessLibraries(ctx context.Context) error {
	_, err := request[map[string]string](ctx, c, http.MethodPost, "/library/process", nil)
	return err
}

// TriggerRescan asks the backend to rescan processed libraries.
func (c *Client) TriggerRescan(ctx context.Context) error {
	_, err := request[map[string]string](ctx, c, http.MethodPost, "/library/rescan", nil)
	return err
}

// ToggleLibrary enables or disables a single library section.
func (c *Client) ToggleLibrary(ctx context.Context, libraryID uuid.UUID, enabled bool) error {
	_, err := request[map[string]string](ctx, c, http.MethodPut, "/library/toggle", libraryToggleBody{LibraryID: libraryID, Enabled: enabled})
	return err
}

// TasteProfileTitles retrieves the candidate titles for taste-profile setup.
func (c *Client) TasteProfileTitles(ctx context.Context) ([]models.TasteProfileTitle, error) {
	return request[[]models.TasteProfileTitle](ctx, c, http.MethodGet, "/taste-profile/titles", nil)
}

// SubmitTasteProfile submits the selected subset of candidate titles.
func (c *Client) SubmitTasteProfile(ctx context.Context, selection models.TasteProfileSelection) error {
	_, err := request[map[string]string](ctx, c, http.MethodPost, "/taste-profile/select", selection)
	return err
}

// Settings retrieves the user's preference record.
func (c *Client) Settings(ctx context.Context) (models.UserSettings, error) {
	return request[models.UserSettings](ctx, c, http.MethodGet, "/settings", nil)
}

// UpdateSettings pushes the full preference record and returns the server's copy.
func (c *Client) UpdateSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	return request[models.UserSettings](ctx, c, http.MethodPut, "/settings", settings)
}

// StreamURL builds the playable stream URL for a clip.
//
// The token rides in the query string because the URL is handed to a media
// player that cannot set headers.
func (c *Client) StreamURL(clipID uuid.UUID) string {
	streamURL := fmt.Sprintf("%s/clips/%s/stream", c.baseURL, clipID)
	if c.tokens != nil {
		if token, ok := c.tokens.AccessToken(); ok {
			streamURL += "?token=" + url.QueryEscape(token)
		}
	}
	return streamURL
}

// ThumbnailURL builds the thumbnail URL for a clip, token in the query string.
func (c *Client) ThumbnailURL(clipID uuid.UUID) string {
	thumbURL := fmt.Sprintf("%s/clips/%s/thumbnail", c.baseURL, clipID)
	if c.tokens != nil {
		if token, ok := c.tokens.AccessToken(); ok {
			thumbURL += "?token=" + url.QueryEscape(token)
		}
	}
	return thumbURL
}
