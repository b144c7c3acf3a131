package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// CreateTag creates a tag. A name already used by the owner, compared
// case-insensitively, returns domain.ErrConflict.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.cfg.MaxNameLength); err != nil {
		return nil, err
	}
	name := domain.NormalizeTagName(input.Name)

	var created *domain.Tag
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if s.cfg.MaxTagsPerOwner > 0 {
			count, err := s.tags.Count(txCtx, ownerID)
			if err != nil {
				return fmt.Errorf("count tags: %w", err)
			}
			if count >= s.cfg.MaxTagsPerOwner {
				return domain.NewValidationError("tags", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxTagsPerOwner))
			}
		}

		var err error
		created, err = s.tags.Create(txCtx, ownerID, name)
		if err != nil {
			return fmt.Errorf("create tag: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("owner_id", ownerID.String()),
		slog.String("tag_id", created.ID.String()),
	)
	return created, nil
}
