package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
)

var (
	_ list.Item = clipItem{}
	_ list.Item = titleItem{}
)

// clipItem wraps [models.Clip] to implement [list.Item].
type clipItem struct {
	clip models.Clip
}

func (i clipItem) FilterValue() string { return i.clip.Title }
func (i clipItem) Title() string       { return i.clip.Title }
func (i clipItem) Description() string {
	desc := shared.FormatDurationMS(i.clip.DurationMs)
	if i.clip.SeasonEpisode != "" {
		desc = fmt.Sprintf("%s • %s", i.clip.SeasonEpisode, desc)
	}
	if len(i.clip.GenreTags) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, strings.Join(i.clip.GenreTags, ", "))
	}
	return desc
}

// titleItem wraps [models.TasteProfileTitle] to implement [list.Item]; the
// selection marker reflects the taste session's live state.
type titleItem struct {
	title    models.TasteProfileTitle
	selected bool
}

func (i titleItem) FilterValue() string { return i.title.Title }
func (i titleItem) Title() string {
	if i.selected {
		return "[x] " + i.title.Title
	}
	return "[ ] " + i.title.Title
}
func (i titleItem) Description() string {
	desc := i.title.MediaType
	if i.title.Year != nil {
		desc = fmt.Sprintf("%s • %d", desc, *i.title.Year)
	}
	if len(i.title.GenreTags) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, strings.Join(i.title.GenreTags, ", "))
	}
	return desc
}
