package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewOwner returns a fresh owner id. Owners have no table of their own, so a
// random id is an isolated partition of the shared test database.
func NewOwner() uuid.UUID {
	return uuid.New()
}

// SeedTag inserts a tag named name (or a unique name when empty).
func SeedTag(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string) domain.Tag {
	t.Helper()

	if name == "" {
		name = "tag-" + uniqueSuffix()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	tag := domain.Tag{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (id, owner_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		tag.ID, tag.OwnerID, tag.Name, tag.CreatedAt, tag.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}

	return tag
}

// NoteOption customizes a seeded note.
type NoteOption func(n *domain.Note)

// WithTitle sets the note title.
func WithTitle(title string) NoteOption { return func(n *domain.Note) { n.Title = title } }

// WithBody sets the note body.
func WithBody(body string) NoteOption { return func(n *domain.Note) { n.Body = body } }

// WithColor sets the note color.
func WithColor(color string) NoteOption { return func(n *domain.Note) { n.Color = color } }

// Pinned marks the note pinned.
func Pinned() NoteOption { return func(n *domain.Note) { n.IsPinned = true } }

// Archived marks the note archived.
func Archived() NoteOption { return func(n *domain.Note) { n.IsArchived = true } }

// Trashed marks the note trashed.
func Trashed() NoteOption { return func(n *domain.Note) { n.IsTrashed = true } }

// WithTags sets the note's tag ids.
func WithTags(ids ...uuid.UUID) NoteOption { return func(n *domain.Note) { n.TagIDs = ids } }

// WithOrderIndex sets the note's order index.
func WithOrderIndex(i int) NoteOption { return func(n *domain.Note) { n.OrderIndex = i } }

// WithUpdatedAt sets both timestamps.
func WithUpdatedAt(ts time.Time) NoteOption {
	return func(n *domain.Note) {
		n.CreatedAt = ts
		n.UpdatedAt = ts
	}
}

// SeedNote inserts a note directly, bypassing order assignment.
func SeedNote(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts ...NoteOption) domain.Note {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	note := domain.Note{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      "note " + uniqueSuffix(),
		Body:       "body",
		Color:      domain.DefaultNoteColor,
		OrderIndex: 1,
		TagIDs:     []uuid.UUID{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(&note)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, owner_id, title, body, color, order_index, is_pinned,
		                    is_archived, is_trashed, tag_ids, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		note.ID, note.OwnerID, note.Title, note.Body, note.Color, note.OrderIndex, note.IsPinned,
		note.IsArchived, note.IsTrashed, note.TagIDs, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}

	return note
}
