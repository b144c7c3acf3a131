package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// UpdateTag renames a tag. The new name is subject to the same uniqueness
// rule as on creation.
func (s *Service) UpdateTag(ctx context.Context, input UpdateTagInput) (*domain.Tag, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.cfg.MaxNameLength); err != nil {
		return nil, err
	}

	updated, err := s.tags.Rename(ctx, ownerID, input.TagID, domain.NormalizeTagName(input.Name))
	if err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag renamed",
		slog.String("owner_id", ownerID.String()),
		slog.String("tag_id", updated.ID.String()),
	)
	return updated, nil
}
