package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultNoteColor is the color token assigned when a note is created without one.
const DefaultNoteColor = "white"

// Note is a short text note owned by a single user.
type Note struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Title      string
	Body       string
	OrderIndex int
	Color      string
	IsPinned   bool
	TagIDs     []uuid.UUID
	IsArchived bool
	IsTrashed  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// State derives the lifecycle state from the archive/trash flags.
// Trash wins over archive.
func (n *Note) State() NoteState {
	switch {
	case n.IsTrashed:
		return NoteStateTrashed
	case n.IsArchived:
		return NoteStateArchived
	default:
		return NoteStateActive
	}
}

// Bucket returns the listing bucket the note currently belongs to.
func (n *Note) Bucket() Bucket {
	return n.State().Bucket()
}

// HasTag reports whether tagID is in the note's tag set.
func (n *Note) HasTag(tagID uuid.UUID) bool {
	return slices.Contains(n.TagIDs, tagID)
}

// NewNote holds the values persisted for a freshly created note.
// OrderIndex is assigned by the store.
type NewNote struct {
	OwnerID  uuid.UUID
	Title    string
	Body     string
	Color    string
	IsPinned bool
}

// NoteUpdateParams is a partial update. Nil fields are left unchanged.
// State flags are only set by lifecycle transitions.
type NoteUpdateParams struct {
	Title      *string
	Body       *string
	Color      *string
	OrderIndex *int
	IsPinned   *bool
	IsArchived *bool
	IsTrashed  *bool
	TagIDs     *[]uuid.UUID
}

// IsEmpty reports whether the update carries no field at all.
func (p NoteUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Body == nil && p.Color == nil && p.OrderIndex == nil &&
		p.IsPinned == nil && p.IsArchived == nil && p.IsTrashed == nil && p.TagIDs == nil
}

// UniqueIDs returns ids with duplicates removed, keeping first occurrence order.
func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
