package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// GetNote returns a single note regardless of its state.
func (s *Service) GetNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateID(noteID); err != nil {
		return nil, err
	}

	n, err := s.notes.GetByID(ctx, ownerID, noteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}
