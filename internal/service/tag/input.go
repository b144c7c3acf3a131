package tag

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// CreateTagInput holds the parameters for creating a tag.
type CreateTagInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateTagInput) Validate(maxName int) error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name, maxName)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTagInput holds the parameters for renaming a tag.
type UpdateTagInput struct {
	TagID uuid.UUID
	Name  string
}

// Validate checks all fields and collects all errors.
func (i UpdateTagInput) Validate(maxName int) error {
	var errs []domain.FieldError
	if i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = validateName(errs, i.Name, maxName)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTagsInput lists the tags to delete in one cascade.
type DeleteTagsInput struct {
	TagIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteTagsInput) Validate() error {
	if len(i.TagIDs) == 0 {
		return domain.NewValidationError("tagIds", "required")
	}
	for _, id := range i.TagIDs {
		if id == uuid.Nil {
			return domain.NewValidationError("tagIds", "invalid id")
		}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string, max int) []domain.FieldError {
	name = domain.NormalizeTagName(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if max > 0 && utf8.RuneCountInString(name) > max {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}
