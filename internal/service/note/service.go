package note

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/config"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

type noteRepo interface {
	Create(ctx context.Context, in domain.NewNote) (*domain.Note, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, ownerID uuid.UUID, q domain.NoteQuery) ([]*domain.Note, error)
	Count(ctx context.Context, ownerID uuid.UUID, q domain.NoteQuery) (int, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, p domain.NoteUpdateParams) (*domain.Note, error)
	UpdateInState(ctx context.Context, ownerID, id uuid.UUID, from domain.NoteState, p domain.NoteUpdateParams) (*domain.Note, error)
	AddTag(ctx context.Context, ownerID, noteID, tagID uuid.UUID) (*domain.Note, error)
	RemoveTag(ctx context.Context, ownerID, noteID, tagID uuid.UUID) (*domain.Note, error)
	DeleteTrashed(ctx context.Context, ownerID, id uuid.UUID) error
	EmptyTrash(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type tagRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Tag, error)
	ExistingIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements note operations for the authenticated owner.
type Service struct {
	notes noteRepo
	tags  tagRepo
	tx    txManager
	cfg   config.NotesConfig
	log   *slog.Logger
}

// NewService creates a new Note service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	tags tagRepo,
	tx txManager,
	cfg config.NotesConfig,
) *Service {
	if cfg.DefaultColor == "" {
		cfg.DefaultColor = domain.DefaultNoteColor
	}
	return &Service{
		notes: notes,
		tags:  tags,
		tx:    tx,
		cfg:   cfg,
		log:   log.With("service", "note"),
	}
}

func ownerFromCtx(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return ownerID, nil
}
