package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/metrics"
)

// ArchiveNote moves an active note to the archive and unpins it.
func (s *Service) ArchiveNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.transition(ctx, noteID, domain.EventArchive)
}

// UnarchiveNote returns an archived note to the active bucket.
func (s *Service) UnarchiveNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.transition(ctx, noteID, domain.EventUnarchive)
}

// TrashNote moves an active or archived note to the trash.
func (s *Service) TrashNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.transition(ctx, noteID, domain.EventTrash)
}

// RestoreNote returns a trashed note to the active bucket.
func (s *Service) RestoreNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.transition(ctx, noteID, domain.EventRestore)
}

// PinNote pins an active note.
func (s *Service) PinNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.transition(ctx, noteID, domain.EventPin)
}

// UnpinNote unpins an active note.
func (s *Service) UnpinNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.transition(ctx, noteID, domain.EventUnpin)
}

// transition loads the note, checks the event against its state and writes
// the patch guarded by that state. A concurrent state change between read
// and write surfaces as ErrPreconditionFailed.
func (s *Service) transition(ctx context.Context, noteID uuid.UUID, event domain.LifecycleEvent) (*domain.Note, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateID(noteID); err != nil {
		return nil, err
	}

	var updated *domain.Note
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.notes.GetByID(txCtx, ownerID, noteID)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}

		t, err := domain.ApplyEvent(current.State(), event)
		if err != nil {
			return err
		}

		updated, err = s.notes.UpdateInState(txCtx, ownerID, noteID, t.From, t.Patch)
		if err != nil {
			return fmt.Errorf("%s note: %w", event, err)
		}
		return nil
	})
	if err != nil {
		var te *domain.TransitionError
		if errors.As(err, &te) {
			s.log.DebugContext(ctx, "transition rejected",
				slog.String("note_id", noteID.String()),
				slog.String("state", te.From.String()),
				slog.String("event", event.String()),
			)
		}
		return nil, err
	}

	metrics.TrackNoteOperation(event.String())
	s.log.InfoContext(ctx, "note transitioned",
		slog.String("owner_id", ownerID.String()),
		slog.String("note_id", noteID.String()),
		slog.String("event", event.String()),
		slog.String("state", updated.State().String()),
	)

	return updated, nil
}
