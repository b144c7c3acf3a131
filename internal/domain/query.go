package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Bucket selects one of the three note listings.
type Bucket string

const (
	BucketActive  Bucket = "active"
	BucketArchive Bucket = "archive"
	BucketTrash   Bucket = "trash"
)

func (b Bucket) String() string { return string(b) }

func (b Bucket) IsValid() bool {
	switch b {
	case BucketActive, BucketArchive, BucketTrash:
		return true
	}
	return false
}

// SortField is the caller-requested final tie-break of a note listing.
type SortField string

const (
	SortByOrderIndex SortField = "orderIndex"
	SortByTitle      SortField = "title"
	SortByCreatedAt  SortField = "createdAt"
	SortByUpdatedAt  SortField = "updatedAt"
	SortByColor      SortField = "color"
)

// ParseSortField maps a request value onto a known field.
// Unknown or empty values fall back to SortByOrderIndex.
func ParseSortField(s string) SortField {
	switch f := SortField(strings.TrimSpace(s)); f {
	case SortByOrderIndex, SortByTitle, SortByCreatedAt, SortByUpdatedAt, SortByColor:
		return f
	default:
		return SortByOrderIndex
	}
}

// SortOrder is the direction of the requested sort field.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// NoteQuery describes one page of a note listing.
type NoteQuery struct {
	Bucket    Bucket
	Page      int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder
	// Search is a case-insensitive substring matched against title or body.
	// Empty means no text filter.
	Search string
	TagID  *uuid.UUID
}

// Offset returns the number of rows skipped before the page starts.
func (q NoteQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// NotePage is one page of a listing plus navigation flags.
type NotePage struct {
	Total   int
	Page    int
	Limit   int
	Result  []*Note
	HasNext bool
	HasPrev bool
}

// NewNotePage computes the navigation flags for a page of results.
func NewNotePage(q NoteQuery, total int, result []*Note) *NotePage {
	if result == nil {
		result = []*Note{}
	}
	totalPages := 0
	if q.Limit > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}
	return &NotePage{
		Total:   total,
		Page:    q.Page,
		Limit:   q.Limit,
		Result:  result,
		HasNext: q.Page < totalPages,
		HasPrev: q.Page > 1 && total > 0,
	}
}
