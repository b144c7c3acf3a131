package tag

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// ListTagsWithCounts returns the owner's tags sorted by name, each with the
// number of active notes that reference it.
func (s *Service) ListTagsWithCounts(ctx context.Context) ([]domain.TagWithCount, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := s.tags.ListWithCounts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
