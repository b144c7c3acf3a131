package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

const enqueueCleanupSQL = `
INSERT INTO tag_cleanups (tag_id, owner_id)
SELECT unnest($2::uuid[]), $1::uuid
ON CONFLICT (tag_id) DO NOTHING`

const completeCleanupSQL = `DELETE FROM tag_cleanups WHERE tag_id = ANY($1::uuid[])`

const failCleanupSQL = `
UPDATE tag_cleanups
SET attempts = attempts + 1, last_error = $2
WHERE tag_id = ANY($1::uuid[])`

const pendingCleanupsSQL = `
SELECT tag_id, owner_id, attempts, last_error, created_at
FROM tag_cleanups
ORDER BY created_at, tag_id
LIMIT $1`

const countCleanupsSQL = `SELECT count(*) FROM tag_cleanups`

// EnqueueCleanup records that references to tagIDs must be removed from the
// owner's notes. Call it in the transaction that deletes the tags.
func (r *Repo) EnqueueCleanup(ctx context.Context, ownerID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, enqueueCleanupSQL, ownerID, tagIDs); err != nil {
		return fmt.Errorf("enqueue tag cleanup: %w", err)
	}
	return nil
}

// CompleteCleanup drops the outbox rows of tagIDs.
func (r *Repo) CompleteCleanup(ctx context.Context, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, completeCleanupSQL, tagIDs); err != nil {
		return fmt.Errorf("complete tag cleanup: %w", err)
	}
	return nil
}

// FailCleanup bumps the attempt counter of tagIDs and stores the last error.
func (r *Repo) FailCleanup(ctx context.Context, tagIDs []uuid.UUID, cause string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, failCleanupSQL, tagIDs, cause); err != nil {
		return fmt.Errorf("record tag cleanup failure: %w", err)
	}
	return nil
}

// PendingCleanups returns up to limit outbox rows, oldest first.
func (r *Repo) PendingCleanups(ctx context.Context, limit int) ([]domain.TagCleanup, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, pendingCleanupsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("pending tag cleanups: %w", err)
	}
	defer rows.Close()

	out := []domain.TagCleanup{}
	for rows.Next() {
		var c domain.TagCleanup
		if err := rows.Scan(&c.TagID, &c.OwnerID, &c.Attempts, &c.LastError, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag cleanup: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pending tag cleanups: %w", err)
	}
	return out, nil
}

// CountPendingCleanups returns the size of the outbox.
func (r *Repo) CountPendingCleanups(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countCleanupsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tag cleanups: %w", err)
	}
	return n, nil
}
