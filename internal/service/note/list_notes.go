package note

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// ListNotes returns one page of a bucket with the total count of matching
// notes. Count and page are read concurrently.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) (*domain.NotePage, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.cfg.MaxPageLimit); err != nil {
		return nil, err
	}
	q := input.query(s.cfg.DefaultPageLimit)

	var (
		total int
		notes []*domain.Note
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.notes.Count(gctx, ownerID, q)
		if err != nil {
			return fmt.Errorf("count notes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		notes, err = s.notes.List(gctx, ownerID, q)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewNotePage(q, total, notes), nil
}

// ListArchived lists the archive bucket.
func (s *Service) ListArchived(ctx context.Context, input ListNotesInput) (*domain.NotePage, error) {
	input.Bucket = domain.BucketArchive
	return s.ListNotes(ctx, input)
}

// ListTrash lists the trash bucket.
func (s *Service) ListTrash(ctx context.Context, input ListNotesInput) (*domain.NotePage, error) {
	input.Bucket = domain.BucketTrash
	return s.ListNotes(ctx, input)
}
