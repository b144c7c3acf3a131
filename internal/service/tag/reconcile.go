package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/metrics"
)

const defaultReconcileBatch = 100

// ReconcileTagReferences re-runs pending cleanups for all owners, then sweeps
// every note for tag ids that no longer resolve to a tag. It is safe to run
// repeatedly and concurrently with normal traffic.
func (s *Service) ReconcileTagReferences(ctx context.Context, batchSize int) (domain.ReconcileReport, error) {
	if batchSize <= 0 {
		batchSize = defaultReconcileBatch
	}

	var report domain.ReconcileReport
	for {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("reconcile tags: %w", err)
		}
		pending, err := s.cleanup.PendingCleanups(ctx, batchSize)
		if err != nil {
			return report, fmt.Errorf("reconcile tags: %w", err)
		}

		failed := 0
		for ownerID, tagIDs := range groupByOwner(pending) {
			if s.cascade(ctx, ownerID, tagIDs) {
				report.CleanupsCompleted += len(tagIDs)
			} else {
				failed += len(tagIDs)
			}
		}
		report.CleanupsFailed += failed

		// Failed rows stay at the head of the queue; stop instead of
		// refetching them.
		if len(pending) < batchSize || failed > 0 {
			break
		}
	}

	repaired, err := s.notes.StripDanglingTags(ctx)
	if err != nil {
		return report, fmt.Errorf("reconcile tags: %w", err)
	}
	report.NotesRepaired = repaired

	left, err := s.cleanup.CountPendingCleanups(ctx)
	if err != nil {
		return report, fmt.Errorf("reconcile tags: %w", err)
	}
	report.Pending = left
	metrics.SetPendingTagCleanups(left)

	s.log.InfoContext(ctx, "tag references reconciled",
		slog.Int("cleanups_completed", report.CleanupsCompleted),
		slog.Int("cleanups_failed", report.CleanupsFailed),
		slog.Int64("notes_repaired", report.NotesRepaired),
		slog.Int("pending", report.Pending),
	)
	return report, nil
}

func groupByOwner(rows []domain.TagCleanup) map[uuid.UUID][]uuid.UUID {
	out := make(map[uuid.UUID][]uuid.UUID)
	for _, r := range rows {
		out[r.OwnerID] = append(out[r.OwnerID], r.TagID)
	}
	return out
}
