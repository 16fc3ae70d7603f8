package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/byetz/internal/session"
	"github.com/desertthunder/byetz/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	TasteView ViewState = iota
	FeedView
	QueueView
	SavedView
)

// Model represents the TUI application state.
//
// All durable state lives in the sessions; the model issues commands against
// them and re-renders from their getters on every message.
type Model struct {
	ctx     context.Context
	view    ViewState
	auth    *session.AuthSession
	feed    *session.FeedSession
	taste   *session.TasteProfileSession
	profile *session.ProfileSession

	width     int
	height    int
	titleList list.Model
	queueList list.Model
	savedList list.Model
	err       error
	help      help.Model
	keys      keyMap
}

type feedLoadedMsg struct{}

type titlesLoadedMsg struct{}

type tasteSubmittedMsg struct {
	err error
}

type savedLoadedMsg struct{}

// NewModel creates a new TUI model with the provided sessions.
func NewModel(ctx context.Context, auth *session.AuthSession, feed *session.FeedSession, taste *session.TasteProfileSession, profile *session.ProfileSession) *Model {
	view := FeedView
	if auth.State() == session.StateNeedsTasteProfile {
		view = TasteView
	}

	return &Model{
		ctx:     ctx,
		view:    view,
		auth:    auth,
		feed:    feed,
		taste:   taste,
		profile: profile,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init starts the first load for whichever view the model opened in.
func (m *Model) Init() tea.Cmd {
	if m.view == TasteView {
		return m.loadTitles()
	}
	return m.loadFeed()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.titleList, &m.queueList, &m.savedList} {
			if l.Width() == 0 {
				l.SetSize(msg.Width-4, msg.Height-8)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case TasteView:
			return m.handleTasteKeys(msg)
		case FeedView:
			return m.handleFeedKeys(msg)
		case QueueView:
			return m.handleQueueKeys(msg)
		case SavedView:
			return m.handleSavedKeys(msg)
		}

	case titlesLoadedMsg:
		m.titleList = list.New(m.titleItems(), list.NewDefaultDelegate(), 0, 0)
		m.titleList.Title = "Pick at least 10 titles you like"
		m.titleList.SetSize(m.width-4, m.height-8)
		return m, nil

	case tasteSubmittedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.auth.CompleteTasteProfile()
		m.err = nil
		m.view = FeedView
		return m, m.loadFeed()

	case feedLoadedMsg:
		m.refreshQueueList()
		return m, nil

	case savedLoadedMsg:
		items := make([]list.Item, 0)
		for _, clip := range m.profile.SavedClips() {
			items = append(items, clipItem{clip: clip})
		}
		m.savedList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.savedList.Title = "Saved Clips"
		m.savedList.SetSize(m.width-4, m.height-8)
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case TasteView:
		return m.renderTaste()
	case FeedView:
		return m.renderFeed()
	case QueueView:
		return m.renderQueue()
	case SavedView:
		return m.renderSaved()
	default:
		return ""
	}
}

func (m *Model) handleTasteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggle):
		if item, ok := m.titleList.SelectedItem().(titleItem); ok {
			m.taste.ToggleSelection(item.title.MediaID)
			m.titleList.SetItems(m.titleItems())
		}
		return m, nil
	case key.Matches(msg, m.keys.submit):
		return m, m.submitTaste()
	}

	var cmd tea.Cmd
	m.titleList, cmd = m.titleList.Update(msg)
	return m, cmd
}

func (m *Model) handleFeedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.next):
		m.feed.NextClip()
		return m, nil
	case key.Matches(msg, m.keys.prev):
		m.feed.PreviousClip()
		return m, nil
	case key.Matches(msg, m.keys.pause):
		m.feed.TogglePlayback()
		return m, nil
	case key.Matches(msg, m.keys.like):
		if clip, ok := m.feed.CurrentClip(); ok {
			m.feed.LikeClip(clip)
		}
		return m, nil
	case key.Matches(msg, m.keys.dislike):
		if clip, ok := m.feed.CurrentClip(); ok {
			m.feed.DislikeClip(clip)
		}
		return m, nil
	case key.Matches(msg, m.keys.save):
		if clip, ok := m.feed.CurrentClip(); ok {
			m.feed.SaveClip(clip)
		}
		return m, nil
	case key.Matches(msg, m.keys.queue):
		m.refreshQueueList()
		m.view = QueueView
		return m, nil
	case key.Matches(msg, m.keys.saved):
		m.view = SavedView
		return m, m.loadSaved()
	}
	return m, nil
}

func (m *Model) handleQueueKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = FeedView
		return m, nil
	}

	var cmd tea.Cmd
	m.queueList, cmd = m.queueList.Update(msg)
	return m, cmd
}

func (m *Model) handleSavedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = FeedView
		return m, nil
	}

	var cmd tea.Cmd
	m.savedList, cmd = m.savedList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case TasteView:
		m.titleList, cmd = m.titleList.Update(msg)
	case QueueView:
		m.queueList, cmd = m.queueList.Update(msg)
	case SavedView:
		m.savedList, cmd = m.savedList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadFeed() tea.Cmd {
	return func() tea.Msg {
		m.feed.LoadFeed(m.ctx)
		return feedLoadedMsg{}
	}
}

func (m *Model) loadTitles() tea.Cmd {
	return func() tea.Msg {
		m.taste.LoadTitles(m.ctx)
		return titlesLoadedMsg{}
	}
}

func (m *Model) submitTaste() tea.Cmd {
	return func() tea.Msg {
		return tasteSubmittedMsg{err: m.taste.Submit(m.ctx)}
	}
}

func (m *Model) loadSaved() tea.Cmd {
	return func() tea.Msg {
		m.profile.LoadProfile(m.ctx)
		return savedLoadedMsg{}
	}
}

func (m *Model) titleItems() []list.Item {
	titles := m.taste.Titles()
	items := make([]list.Item, len(titles))
	for i, title := range titles {
		items[i] = titleItem{title: title, selected: m.taste.IsSelected(title.MediaID)}
	}
	return items
}

func (m *Model) refreshQueueList() {
	items := make([]list.Item, 0)
	for _, clip := range m.feed.Clips() {
		items = append(items, clipItem{clip: clip})
	}
	m.queueList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.queueList.Title = "Clip Queue"
	m.queueList.SetSize(m.width-4, m.height-8)
	m.queueList.Select(m.feed.CurrentIndex())
}

func (m *Model) renderTaste() string {
	status := fmt.Sprintf("Selected: %d/%d", m.taste.SelectedCount(), session.MinSelections)
	if m.err != nil {
		status = styles.err.Render(m.err.Error())
	}

	helpKeys := []key.Binding{m.keys.toggle, m.keys.submit, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.titleList.View(), status, helpView)
}

func (m *Model) renderFeed() string {
	clip, ok := m.feed.CurrentClip()
	if !ok {
		if m.feed.IsLoading() {
			return "Loading feed..."
		}
		return "No clips in the feed yet.\n\nPress q to quit"
	}

	title := styles.title.Render(clip.Title)

	var lines []string
	if clip.SeasonEpisode != "" {
		lines = append(lines, clip.SeasonEpisode)
	}
	lines = append(lines, fmt.Sprintf("Duration: %s", shared.FormatDurationMS(clip.DurationMs)))
	if len(clip.GenreTags) > 0 {
		lines = append(lines, fmt.Sprintf("Genres: %s", strings.Join(clip.GenreTags, ", ")))
	}
	if clip.Director != "" {
		lines = append(lines, fmt.Sprintf("Director: %s", clip.Director))
	}
	if len(clip.MoodTags) > 0 {
		lines = append(lines, fmt.Sprintf("Mood: %s", strings.Join(clip.MoodTags, ", ")))
	}

	state := "▶ playing"
	if !m.feed.IsPlaying() {
		state = "⏸ paused"
	}
	position := fmt.Sprintf("Clip %d of %d • %s", m.feed.CurrentIndex()+1, len(m.feed.Clips()), state)

	var marks []string
	if m.feed.IsLiked(clip) {
		marks = append(marks, styles.ok.Render("♥ liked"))
	}
	if m.feed.IsSaved(clip) {
		marks = append(marks, styles.ok.Render("★ saved"))
	}

	helpKeys := []key.Binding{m.keys.next, m.keys.prev, m.keys.like, m.keys.dislike, m.keys.save, m.keys.queue, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	body := strings.Join(lines, "\n")
	markLine := strings.Join(marks, "  ")
	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n\n%s", title, body, position, markLine, helpView)
}

func (m *Model) renderQueue() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.queueList.View(), helpView)
}

func (m *Model) renderSaved() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.savedList.View(), helpView)
}
