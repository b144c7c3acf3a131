// Package tag implements the tag Entity Store, tag usage aggregation and the
// cleanup outbox for deleted tags on PostgreSQL.
package tag

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

const tagColumns = "id, owner_id, name, created_at, updated_at"

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO tags (id, owner_id, name)
VALUES ($1, $2, $3)
RETURNING ` + tagColumns

const getByIDSQL = `SELECT ` + tagColumns + ` FROM tags WHERE owner_id = $1 AND id = $2`

const renameSQL = `
UPDATE tags
SET name = $3, updated_at = ` + postgres.TouchUpdatedAt + `
WHERE owner_id = $1 AND id = $2
RETURNING ` + tagColumns

const countSQL = `SELECT count(*) FROM tags WHERE owner_id = $1`

const existingIDsSQL = `SELECT id FROM tags WHERE owner_id = $1 AND id = ANY($2::uuid[])`

const deleteSQL = `DELETE FROM tags WHERE owner_id = $1 AND id = ANY($2::uuid[]) RETURNING id`

// Usage counts only include notes in the active bucket.
const listWithCountsSQL = `
SELECT t.id, t.owner_id, t.name, t.created_at, t.updated_at,
       count(n.id) AS note_count
FROM tags t
LEFT JOIN notes n
       ON n.owner_id = t.owner_id
      AND t.id = ANY(n.tag_ids)
      AND NOT n.is_archived
      AND NOT n.is_trashed
WHERE t.owner_id = $1
GROUP BY t.id
ORDER BY lower(t.name), t.id`

type tagCountRow struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	NoteCount int       `db:"note_count"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tag within the owner's partition.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Tag, error) {
	t, err := scanTag(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, ownerID, id))
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return t, nil
}

// Count returns how many tags the owner has.
func (r *Repo) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tags: %w", err)
	}
	return n, nil
}

// ExistingIDs returns the subset of ids that resolve to tags of the owner.
func (r *Repo) ExistingIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	return r.collectIDs(ctx, "existing tag ids", existingIDsSQL, ownerID, ids)
}

// ListWithCounts returns every tag of the owner with the number of active
// notes referencing it, sorted by name case-insensitively.
func (r *Repo) ListWithCounts(ctx context.Context, ownerID uuid.UUID) ([]domain.TagWithCount, error) {
	var rows []tagCountRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listWithCountsSQL, ownerID); err != nil {
		return nil, fmt.Errorf("list tags with counts: %w", err)
	}

	out := make([]domain.TagWithCount, len(rows))
	for i, row := range rows {
		out[i] = domain.TagWithCount{
			Tag: domain.Tag{
				ID:        row.ID,
				OwnerID:   row.OwnerID,
				Name:      row.Name,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			NoteCount: row.NoteCount,
		}
	}
	return out, nil
}

// List returns the owner's tags ordered by name, optionally filtered by ids.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Tag, error) {
	b := postgres.Builder.
		Select(tagColumns).
		From("tags").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("lower(name)", "id")
	if ids != nil {
		b = b.Where(squirrel.Expr("id = ANY(?::uuid[])", ids))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tags: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []*domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a tag. Returns domain.ErrConflict when the owner already
// has a tag with the same name ignoring case.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Tag, error) {
	id := uuid.New()
	t, err := scanTag(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL, id, ownerID, name))
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return t, nil
}

// Rename changes a tag's name.
func (r *Repo) Rename(ctx context.Context, ownerID, id uuid.UUID, name string) (*domain.Tag, error) {
	t, err := scanTag(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, renameSQL, ownerID, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return t, nil
}

// Delete removes the listed tags of the owner and returns the ids that
// actually existed.
func (r *Repo) Delete(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	return r.collectIDs(ctx, "delete tags", deleteSQL, ownerID, ids)
}

func (r *Repo) collectIDs(ctx context.Context, op, sql string, args ...any) ([]uuid.UUID, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
