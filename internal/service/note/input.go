package note

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/config"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

const maxColorLength = 32

// CreateNoteInput holds the parameters for creating a note.
type CreateNoteInput struct {
	Title    string
	Body     string
	Color    *string
	IsPinned bool
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate(cfg config.NotesConfig) error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title, cfg.MaxTitleLength)
	errs = validateBody(errs, i.Body, cfg.MaxBodyLength)
	if i.Color != nil {
		errs = validateColor(errs, *i.Color)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListNotesInput holds the parameters for listing one bucket of notes.
// A nil Page or Limit takes the default; an explicit value must be >= 1.
type ListNotesInput struct {
	Bucket    domain.Bucket
	Page      *int
	Limit     *int
	SortBy    string
	SortOrder string
	Search    string
	TagID     *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListNotesInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Bucket != "" && !i.Bucket.IsValid() {
		errs = append(errs, domain.FieldError{Field: "bucket", Message: "must be one of active, archive, trash"})
	}
	if i.Page != nil && *i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
	}
	switch {
	case i.Limit == nil:
	case *i.Limit < 1:
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 1"})
	case maxLimit > 0 && *i.Limit > maxLimit:
		errs = append(errs, domain.FieldError{Field: "limit", Message: "too large"})
	}
	if i.SortOrder != "" && !domain.SortOrder(strings.ToLower(i.SortOrder)).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortOrder", Message: "must be asc or desc"})
	}
	if i.TagID != nil && *i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tagId", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListNotesInput) query(defaultLimit int) domain.NoteQuery {
	page, limit := 1, defaultLimit
	if i.Page != nil {
		page = *i.Page
	}
	if i.Limit != nil {
		limit = *i.Limit
	}
	bucket := i.Bucket
	if bucket == "" {
		bucket = domain.BucketActive
	}
	order := domain.SortOrder(strings.ToLower(i.SortOrder))
	if order == "" {
		order = domain.SortAsc
	}
	return domain.NoteQuery{
		Bucket:    bucket,
		Page:      page,
		Limit:     limit,
		SortBy:    domain.ParseSortField(i.SortBy),
		SortOrder: order,
		Search:    strings.TrimSpace(i.Search),
		TagID:     i.TagID,
	}
}

// UpdateNoteInput holds the parameters for a partial note update.
// Nil fields are left unchanged. Archive and trash state is changed only
// through the lifecycle operations.
type UpdateNoteInput struct {
	NoteID     uuid.UUID
	Title      *string
	Body       *string
	Color      *string
	OrderIndex *int
	IsPinned   *bool
	TagIDs     *[]uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate(cfg config.NotesConfig) error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title == nil && i.Body == nil && i.Color == nil && i.OrderIndex == nil && i.IsPinned == nil && i.TagIDs == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title, cfg.MaxTitleLength)
	}
	if i.Body != nil {
		errs = validateBody(errs, *i.Body, cfg.MaxBodyLength)
	}
	if i.Color != nil {
		errs = validateColor(errs, *i.Color)
	}
	if i.TagIDs != nil {
		for _, id := range *i.TagIDs {
			if id == uuid.Nil {
				errs = append(errs, domain.FieldError{Field: "tagIds", Message: "invalid id"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// NoteTagInput identifies one note and one tag.
type NoteTagInput struct {
	NoteID uuid.UUID
	TagID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i NoteTagInput) Validate() error {
	var errs []domain.FieldError
	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tagId", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string, max int) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if max > 0 && utf8.RuneCountInString(title) > max {
		return append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	return errs
}

func validateBody(errs []domain.FieldError, body string, max int) []domain.FieldError {
	if strings.TrimSpace(body) == "" {
		return append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if max > 0 && utf8.RuneCountInString(body) > max {
		return append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}
	return errs
}

func validateColor(errs []domain.FieldError, color string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(color)) > maxColorLength {
		return append(errs, domain.FieldError{Field: "color", Message: "too long"})
	}
	return errs
}

func validateID(id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
