package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/metrics"
)

// CreateNote inserts an active note at the end of the owner's ordering.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	color := s.cfg.DefaultColor
	if input.Color != nil && strings.TrimSpace(*input.Color) != "" {
		color = strings.TrimSpace(*input.Color)
	}

	created, err := s.notes.Create(ctx, domain.NewNote{
		OwnerID:  ownerID,
		Title:    strings.TrimSpace(input.Title),
		Body:     input.Body,
		Color:    color,
		IsPinned: input.IsPinned,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	metrics.TrackNoteOperation("create")
	s.log.InfoContext(ctx, "note created",
		slog.String("owner_id", ownerID.String()),
		slog.String("note_id", created.ID.String()),
		slog.Int("order_index", created.OrderIndex),
	)

	return created, nil
}
