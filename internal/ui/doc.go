// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the clip feed:
//  1. [TasteView] : One-time taste-profile setup for fresh accounts
//  2. [FeedView] : Watch the current clip card and react to it
//  3. [QueueView] : Browse the fetched clip queue
//  4. [SavedView] : Review saved clips
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All state lives in the session layer; the model only issues commands against
// it and re-renders, so reactions stay instant while network writes settle in
// the background.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual
// help displayed via charmbracelet/bubbles/help.
package ui
