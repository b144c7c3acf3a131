package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/metrics"
)

// DeleteNote permanently removes a trashed note.
func (s *Service) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	if err := validateID(noteID); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.notes.GetByID(txCtx, ownerID, noteID)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		if _, err := domain.ApplyEvent(current.State(), domain.EventPermanentDelete); err != nil {
			return err
		}
		if err := s.notes.DeleteTrashed(txCtx, ownerID, noteID); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.TrackNoteOperation("delete")
	s.log.InfoContext(ctx, "note deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("note_id", noteID.String()),
	)
	return nil
}

// EmptyTrash permanently removes every trashed note of the owner and
// returns how many were removed.
func (s *Service) EmptyTrash(ctx context.Context) (int64, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.notes.EmptyTrash(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("empty trash: %w", err)
	}

	metrics.TrackNoteOperation("empty_trash")
	s.log.InfoContext(ctx, "trash emptied",
		slog.String("owner_id", ownerID.String()),
		slog.Int64("deleted", n),
	)
	return n, nil
}
