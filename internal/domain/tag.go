package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a user-defined label that notes reference by id.
type Tag struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagWithCount pairs a tag with the number of active notes referencing it.
// The count is computed per request and never stored.
type TagWithCount struct {
	Tag
	NoteCount int
}

// TagCleanup is a pending reference cleanup left behind by a tag deletion.
type TagCleanup struct {
	TagID     uuid.UUID
	OwnerID   uuid.UUID
	Attempts  int
	LastError *string
	CreatedAt time.Time
}

// ReconcileReport summarizes one reconcile pass over tag references.
type ReconcileReport struct {
	CleanupsCompleted int
	CleanupsFailed    int
	NotesRepaired     int64
	Pending           int
}
