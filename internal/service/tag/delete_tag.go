package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/metrics"
)

// DeleteTag deletes one tag and removes it from every note of the owner.
func (s *Service) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	if tagID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	deleted, err := s.deleteTags(ctx, []uuid.UUID{tagID})
	if err != nil {
		return err
	}
	if len(deleted) == 0 {
		return fmt.Errorf("delete tag %s: %w", tagID, domain.ErrNotFound)
	}
	return nil
}

// DeleteTags deletes a set of tags and removes all of them from each
// referencing note in a single pass. Unknown ids are ignored.
func (s *Service) DeleteTags(ctx context.Context, input DeleteTagsInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	_, err := s.deleteTags(ctx, domain.UniqueIDs(input.TagIDs))
	return err
}

// deleteTags removes the tag records and enqueues their cleanup in one
// transaction, then runs the cleanup. A failed cleanup leaves the outbox row
// in place for ReconcileTagReferences and is not reported to the caller:
// the tags are already gone.
func (s *Service) deleteTags(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var deleted []uuid.UUID
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.tags.Delete(txCtx, ownerID, ids)
		if err != nil {
			return fmt.Errorf("delete tags: %w", err)
		}
		if err := s.cleanup.EnqueueCleanup(txCtx, ownerID, deleted); err != nil {
			return fmt.Errorf("delete tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(deleted) == 0 {
		return deleted, nil
	}

	s.log.InfoContext(ctx, "tags deleted",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(deleted)),
	)

	s.cascade(ctx, ownerID, deleted)
	return deleted, nil
}

// cascade strips tagIDs from the owner's notes and settles the outbox rows.
// It reports whether the rows left the queue.
func (s *Service) cascade(ctx context.Context, ownerID uuid.UUID, tagIDs []uuid.UUID) bool {
	n, err := s.notes.StripTags(ctx, ownerID, tagIDs)
	if err != nil {
		metrics.TrackTagCascade(metrics.CascadeFailed, 0)
		s.log.ErrorContext(ctx, "tag cascade failed",
			slog.String("owner_id", ownerID.String()),
			slog.Any("tag_ids", tagIDs),
			slog.String("error", err.Error()),
		)
		if ferr := s.cleanup.FailCleanup(context.WithoutCancel(ctx), tagIDs, err.Error()); ferr != nil {
			s.log.ErrorContext(ctx, "record tag cleanup failure",
				slog.Any("tag_ids", tagIDs),
				slog.String("error", ferr.Error()),
			)
		}
		return false
	}

	metrics.TrackTagCascade(metrics.CascadeOK, n)
	if err := s.cleanup.CompleteCleanup(ctx, tagIDs); err != nil {
		// Stripping is idempotent, a later reconcile finishes the row.
		s.log.ErrorContext(ctx, "complete tag cleanup",
			slog.String("owner_id", ownerID.String()),
			slog.Any("tag_ids", tagIDs),
			slog.String("error", err.Error()),
		)
		return false
	}

	s.log.InfoContext(ctx, "tag references removed",
		slog.String("owner_id", ownerID.String()),
		slog.Int64("notes", n),
	)
	return true
}
