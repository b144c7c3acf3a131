package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/metrics"
)

// UpdateNote applies a partial update. Tag ids must all belong to the owner.
// Pinning is only accepted while the note is active.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	p := domain.NoteUpdateParams{
		Body:       input.Body,
		OrderIndex: input.OrderIndex,
		IsPinned:   input.IsPinned,
	}
	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		p.Title = &t
	}
	if input.Color != nil {
		c := strings.TrimSpace(*input.Color)
		if c == "" {
			c = s.cfg.DefaultColor
		}
		p.Color = &c
	}

	var updated *domain.Note
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if input.TagIDs != nil {
			ids, err := s.checkTags(txCtx, ownerID, *input.TagIDs)
			if err != nil {
				return err
			}
			p.TagIDs = &ids
		}

		if input.IsPinned != nil && *input.IsPinned {
			updated, err = s.notes.UpdateInState(txCtx, ownerID, input.NoteID, domain.NoteStateActive, p)
		} else {
			updated, err = s.notes.Update(txCtx, ownerID, input.NoteID, p)
		}
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TrackNoteOperation("update")
	s.log.InfoContext(ctx, "note updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("note_id", updated.ID.String()),
	)

	return updated, nil
}

// checkTags deduplicates ids and verifies they all exist for the owner.
func (s *Service) checkTags(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	ids = domain.UniqueIDs(ids)
	if len(ids) == 0 {
		return ids, nil
	}

	existing, err := s.tags.ExistingIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("check tags: %w", err)
	}
	if len(existing) != len(ids) {
		return nil, domain.NewValidationError("tagIds", "unknown tag")
	}
	return ids, nil
}
