package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// AddTag attaches a tag to a note. Adding a tag already present is a no-op.
func (s *Service) AddTag(ctx context.Context, input NoteTagInput) (*domain.Note, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Note
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.tags.GetByID(txCtx, ownerID, input.TagID); err != nil {
			return fmt.Errorf("get tag: %w", err)
		}
		var err error
		updated, err = s.notes.AddTag(txCtx, ownerID, input.NoteID, input.TagID)
		if err != nil {
			return fmt.Errorf("add tag: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag added to note",
		slog.String("note_id", input.NoteID.String()),
		slog.String("tag_id", input.TagID.String()),
	)
	return updated, nil
}

// RemoveTag detaches a tag from a note. Removing an absent tag is a no-op.
func (s *Service) RemoveTag(ctx context.Context, input NoteTagInput) error {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.notes.RemoveTag(ctx, ownerID, input.NoteID, input.TagID); err != nil {
		return fmt.Errorf("remove tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag removed from note",
		slog.String("note_id", input.NoteID.String()),
		slog.String("tag_id", input.TagID.String()),
	)
	return nil
}
