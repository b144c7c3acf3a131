package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/config"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

type tagRepo interface {
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
	ListWithCounts(ctx context.Context, ownerID uuid.UUID) ([]domain.TagWithCount, error)
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Tag, error)
	Rename(ctx context.Context, ownerID, id uuid.UUID, name string) (*domain.Tag, error)
	Delete(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

// cleanupQueue is the outbox of reference cleanups owed after tag deletion.
type cleanupQueue interface {
	EnqueueCleanup(ctx context.Context, ownerID uuid.UUID, tagIDs []uuid.UUID) error
	CompleteCleanup(ctx context.Context, tagIDs []uuid.UUID) error
	FailCleanup(ctx context.Context, tagIDs []uuid.UUID, cause string) error
	PendingCleanups(ctx context.Context, limit int) ([]domain.TagCleanup, error)
	CountPendingCleanups(ctx context.Context) (int, error)
}

// noteRefs removes tag references from notes.
type noteRefs interface {
	StripTags(ctx context.Context, ownerID uuid.UUID, tagIDs []uuid.UUID) (int64, error)
	StripDanglingTags(ctx context.Context) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements tag operations and the tag reference cascade.
type Service struct {
	tags    tagRepo
	cleanup cleanupQueue
	notes   noteRefs
	tx      txManager
	cfg     config.TagsConfig
	log     *slog.Logger
}

// NewService creates a new Tag service.
func NewService(
	log *slog.Logger,
	tags tagRepo,
	cleanup cleanupQueue,
	notes noteRefs,
	tx txManager,
	cfg config.TagsConfig,
) *Service {
	return &Service{
		tags:    tags,
		cleanup: cleanup,
		notes:   notes,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "tag"),
	}
}

func ownerFromCtx(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return ownerID, nil
}
