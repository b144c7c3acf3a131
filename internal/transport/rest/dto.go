package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/service/note"
)

type noteResponse struct {
	ID         uuid.UUID   `json:"id"`
	OwnerID    uuid.UUID   `json:"ownerId"`
	Title      string      `json:"title"`
	Body       string      `json:"body"`
	OrderIndex int         `json:"orderIndex"`
	Color      string      `json:"color"`
	IsPinned   bool        `json:"isPinned"`
	TagIDs     []uuid.UUID `json:"tagIds"`
	IsArchived bool        `json:"isArchived"`
	IsTrashed  bool        `json:"isTrashed"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	tags := n.TagIDs
	if tags == nil {
		tags = []uuid.UUID{}
	}
	return noteResponse{
		ID:         n.ID,
		OwnerID:    n.OwnerID,
		Title:      n.Title,
		Body:       n.Body,
		OrderIndex: n.OrderIndex,
		Color:      n.Color,
		IsPinned:   n.IsPinned,
		TagIDs:     tags,
		IsArchived: n.IsArchived,
		IsTrashed:  n.IsTrashed,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

type notePageResponse struct {
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Result  []noteResponse `json:"result"`
	HasNext bool           `json:"hasNext"`
	HasPrev bool           `json:"hasPrev"`
}

func toNotePageResponse(p *domain.NotePage) notePageResponse {
	out := notePageResponse{
		Total:   p.Total,
		Page:    p.Page,
		Limit:   p.Limit,
		Result:  make([]noteResponse, 0, len(p.Result)),
		HasNext: p.HasNext,
		HasPrev: p.HasPrev,
	}
	for _, n := range p.Result {
		out.Result = append(out.Result, toNoteResponse(n))
	}
	return out
}

type createNoteRequest struct {
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Color    *string `json:"color"`
	IsPinned bool    `json:"isPinned"`
}

type updateNoteRequest struct {
	Title      *string      `json:"title"`
	Body       *string      `json:"body"`
	Color      *string      `json:"color"`
	OrderIndex *int         `json:"orderIndex"`
	IsPinned   *bool        `json:"isPinned"`
	TagIDs     *[]uuid.UUID `json:"tagIds"`
}

type tagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	NoteCount *int      `json:"noteCount,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTagResponse(t *domain.Tag) tagResponse {
	return tagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func toTagCountResponse(t domain.TagWithCount) tagResponse {
	resp := toTagResponse(&t.Tag)
	count := t.NoteCount
	resp.NoteCount = &count
	return resp
}

type tagRequest struct {
	Name string `json:"name"`
}

type deleteTagsRequest struct {
	TagIDs []uuid.UUID `json:"tagIds"`
}

type emptyTrashResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// parseListQuery reads listing parameters from the query string. Missing
// page and limit are left zero so the service applies its defaults; an
// explicit zero is rejected here.
func parseListQuery(r *http.Request) (note.ListNotesInput, error) {
	q := r.URL.Query()
	in := note.ListNotesInput{
		Bucket:    domain.Bucket(q.Get("bucket")),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Search:    q.Get("search"),
	}

	var errs []domain.FieldError
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer"})
		case n < 1:
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
		default:
			in.Page = &n
		}
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		case n < 1:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 1"})
		default:
			in.Limit = &n
		}
	}
	if v := q.Get("tagId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "tagId", Message: "invalid id"})
		} else {
			in.TagID = &id
		}
	}

	if len(errs) > 0 {
		return in, domain.NewValidationErrors(errs)
	}
	return in, nil
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid id")
	}
	return id, nil
}
