// Package note implements the note Entity Store and the listing composer
// on PostgreSQL. Every statement is scoped by owner_id.
package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

var noteColumns = []string{
	"id", "owner_id", "title", "body", "color", "order_index", "is_pinned",
	"is_archived", "is_trashed", "tag_ids", "created_at", "updated_at",
}

var returningNote = "RETURNING " + strings.Join(noteColumns, ", ")

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// The order index is max+1 within the owner, computed in the same statement.
// Two concurrent inserts may compute the same value; the listing sort breaks
// ties.
var insertSQL = `
INSERT INTO notes (id, owner_id, title, body, color, is_pinned, order_index)
SELECT $1::uuid, $2::uuid, $3::text, $4::text, $5::text, $6::boolean,
       COALESCE(MAX(order_index), 0) + 1
FROM notes
WHERE owner_id = $2::uuid
` + returningNote

var addTagSQL = `
UPDATE notes
SET tag_ids = array_append(tag_ids, $3::uuid),
    updated_at = ` + postgres.TouchUpdatedAt + `
WHERE owner_id = $1 AND id = $2 AND NOT ($3::uuid = ANY(tag_ids))
` + returningNote

var removeTagSQL = `
UPDATE notes
SET tag_ids = array_remove(tag_ids, $3::uuid),
    updated_at = ` + postgres.TouchUpdatedAt + `
WHERE owner_id = $1 AND id = $2 AND $3::uuid = ANY(tag_ids)
` + returningNote

const existsSQL = `SELECT EXISTS(SELECT 1 FROM notes WHERE owner_id = $1 AND id = $2)`

const deleteTrashedSQL = `DELETE FROM notes WHERE owner_id = $1 AND id = $2 AND is_trashed`

const emptyTrashSQL = `DELETE FROM notes WHERE owner_id = $1 AND is_trashed`

// Removes every listed tag id from each referencing note in one pass.
var stripTagsSQL = `
UPDATE notes
SET tag_ids = ARRAY(SELECT t FROM unnest(tag_ids) AS t WHERE t <> ALL($2::uuid[])),
    updated_at = ` + postgres.TouchUpdatedAt + `
WHERE owner_id = $1 AND tag_ids && $2::uuid[]`

// Removes tag ids that no longer resolve to a tag of the same owner.
var stripDanglingSQL = `
UPDATE notes n
SET tag_ids = ARRAY(
        SELECT t FROM unnest(n.tag_ids) AS t
        WHERE EXISTS (SELECT 1 FROM tags g WHERE g.id = t AND g.owner_id = n.owner_id)
    ),
    updated_at = ` + postgres.TouchUpdatedAt + `
WHERE cardinality(n.tag_ids) > 0
  AND EXISTS (
        SELECT 1 FROM unnest(n.tag_ids) AS t
        WHERE NOT EXISTS (SELECT 1 FROM tags g WHERE g.id = t AND g.owner_id = n.owner_id)
    )`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a note by id within the owner's partition.
// Returns domain.ErrNotFound if it does not exist or belongs to another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error) {
	query, args, err := postgres.Builder.
		Select(noteColumns...).
		From("notes").
		Where(squirrel.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get note: %w", err)
	}

	n, err := scanNote(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return n, nil
}

// List returns one page of the owner's notes ordered by the composite key.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, q domain.NoteQuery) ([]*domain.Note, error) {
	query, args, err := pageQuery(ownerID, q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0, q.Limit)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// Count returns how many notes match the query filter, ignoring paging.
func (r *Repo) Count(ctx context.Context, ownerID uuid.UUID, q domain.NoteQuery) (int, error) {
	query, args, err := countQuery(ownerID, q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count notes: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an active, untagged note and assigns its order index.
func (r *Repo) Create(ctx context.Context, in domain.NewNote) (*domain.Note, error) {
	id := uuid.New()
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		id, in.OwnerID, in.Title, in.Body, in.Color, in.IsPinned,
	)

	n, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return n, nil
}

// Update applies a partial update and refreshes updated_at.
// Returns domain.ErrNotFound if the note does not resolve under ownerID.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, p domain.NoteUpdateParams) (*domain.Note, error) {
	n, err := r.update(ctx, ownerID, id, nil, p)
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return n, nil
}

// UpdateInState applies p only while the note is still in state from.
// Returns domain.ErrPreconditionFailed if the note exists in another state
// and domain.ErrNotFound if it does not exist at all.
func (r *Repo) UpdateInState(ctx context.Context, ownerID, id uuid.UUID, from domain.NoteState, p domain.NoteUpdateParams) (*domain.Note, error) {
	n, err := r.update(ctx, ownerID, id, bucketPredicate(from.Bucket()), p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.missOrPrecondition(ctx, ownerID, id, fmt.Sprintf("note %s is no longer %s", id, from))
	}
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return n, nil
}

func (r *Repo) update(ctx context.Context, ownerID, id uuid.UUID, guard squirrel.Sqlizer, p domain.NoteUpdateParams) (*domain.Note, error) {
	b := postgres.Builder.Update("notes")

	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Body != nil {
		b = b.Set("body", *p.Body)
	}
	if p.Color != nil {
		b = b.Set("color", *p.Color)
	}
	if p.OrderIndex != nil {
		b = b.Set("order_index", *p.OrderIndex)
	}
	if p.IsPinned != nil {
		b = b.Set("is_pinned", *p.IsPinned)
	}
	if p.IsArchived != nil {
		b = b.Set("is_archived", *p.IsArchived)
	}
	if p.IsTrashed != nil {
		b = b.Set("is_trashed", *p.IsTrashed)
	}
	if p.TagIDs != nil {
		ids := domain.UniqueIDs(*p.TagIDs)
		b = b.Set("tag_ids", ids)
	}

	where := squirrel.And{squirrel.Eq{"owner_id": ownerID, "id": id}}
	if guard != nil {
		where = append(where, guard)
	}

	query, args, err := b.
		Set("updated_at", squirrel.Expr(postgres.TouchUpdatedAt)).
		Where(where).
		Suffix(returningNote).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update note: %w", err)
	}

	return scanNote(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
}

// AddTag adds tagID to the note's tag set. Adding a tag already present
// leaves the note untouched.
func (r *Repo) AddTag(ctx context.Context, ownerID, noteID, tagID uuid.UUID) (*domain.Note, error) {
	return r.changeTags(ctx, addTagSQL, ownerID, noteID, tagID)
}

// RemoveTag removes tagID from the note's tag set. Removing a tag that is
// not present leaves the note untouched.
func (r *Repo) RemoveTag(ctx context.Context, ownerID, noteID, tagID uuid.UUID) (*domain.Note, error) {
	return r.changeTags(ctx, removeTagSQL, ownerID, noteID, tagID)
}

func (r *Repo) changeTags(ctx context.Context, sql string, ownerID, noteID, tagID uuid.UUID) (*domain.Note, error) {
	n, err := scanNote(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, ownerID, noteID, tagID))
	if errors.Is(err, pgx.ErrNoRows) {
		// Nothing changed: either the set already had the right shape or
		// the note is missing.
		return r.GetByID(ctx, ownerID, noteID)
	}
	if err != nil {
		return nil, postgres.MapError(err, "note", noteID)
	}
	return n, nil
}

// DeleteTrashed permanently removes a trashed note.
// Returns domain.ErrPreconditionFailed if the note exists but is not trashed.
func (r *Repo) DeleteTrashed(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteTrashedSQL, ownerID, id)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}
	if tag.RowsAffected() == 0 {
		return r.missOrPrecondition(ctx, ownerID, id, fmt.Sprintf("note %s is not in trash", id))
	}
	return nil
}

// EmptyTrash permanently removes every trashed note of the owner.
func (r *Repo) EmptyTrash(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, emptyTrashSQL, ownerID)
	if err != nil {
		return 0, fmt.Errorf("empty trash: %w", err)
	}
	return tag.RowsAffected(), nil
}

// StripTags removes all tagIDs from every note of the owner that references
// any of them, as a single statement. Safe to re-run.
func (r *Repo) StripTags(ctx context.Context, ownerID uuid.UUID, tagIDs []uuid.UUID) (int64, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, stripTagsSQL, ownerID, tagIDs)
	if err != nil {
		return 0, fmt.Errorf("strip tags: %w", err)
	}
	return tag.RowsAffected(), nil
}

// StripDanglingTags removes, across all owners, tag ids that no longer
// resolve to an existing tag of the note's owner.
func (r *Repo) StripDanglingTags(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, stripDanglingSQL)
	if err != nil {
		return 0, fmt.Errorf("strip dangling tags: %w", err)
	}
	return tag.RowsAffected(), nil
}

// missOrPrecondition distinguishes a guarded write that matched nothing
// because the note is missing from one that hit a note in the wrong state.
func (r *Repo) missOrPrecondition(ctx context.Context, ownerID, id uuid.UUID, reason string) error {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, ownerID, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "note", id)
	}
	if !exists {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", reason, domain.ErrPreconditionFailed)
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(
		&n.ID, &n.OwnerID, &n.Title, &n.Body, &n.Color, &n.OrderIndex, &n.IsPinned,
		&n.IsArchived, &n.IsTrashed, &n.TagIDs, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if n.TagIDs == nil {
		n.TagIDs = []uuid.UUID{}
	}
	return &n, nil
}
