// Package models defines the wire-level data model shared by the BYETZ client.
//
// All types are Data Transfer Objects mirroring the backend's JSON contract:
//   - [Clip] : A short, bounded excerpt of a media item, independently streamable
//   - [FeedPage] : One server page of clips plus the has-more flag
//   - [InteractionRequest] : A write-once like/dislike/save/skip/watch fact
//   - [UserProfile], [UserSettings] : Account state mirrored from the server
//   - [LibraryStatus], [LibraryDetail] : Plex library processing state
//   - [TasteProfileTitle] : A candidate title for one-time taste selection
//
// Clips are immutable once received; the feed session owns the only ordered
// collection of them. Field names follow the backend's snake_case JSON.
package models
