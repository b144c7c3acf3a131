package note

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// sortColumns maps the requested sort field onto its ORDER BY expression.
var sortColumns = map[domain.SortField]string{
	domain.SortByOrderIndex: "order_index",
	domain.SortByTitle:      "lower(title)",
	domain.SortByCreatedAt:  "created_at",
	domain.SortByUpdatedAt:  "updated_at",
	domain.SortByColor:      "color",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// bucketPredicate selects the rows of one visibility bucket.
// Trash wins over archive, so the archive bucket excludes trashed rows.
func bucketPredicate(b domain.Bucket) squirrel.Sqlizer {
	switch b {
	case domain.BucketArchive:
		return squirrel.Eq{"is_archived": true, "is_trashed": false}
	case domain.BucketTrash:
		return squirrel.Eq{"is_trashed": true}
	default:
		return squirrel.Eq{"is_archived": false, "is_trashed": false}
	}
}

// filterPredicate builds the WHERE clause shared by the count and page queries.
func filterPredicate(ownerID uuid.UUID, q domain.NoteQuery) squirrel.And {
	where := squirrel.And{
		squirrel.Eq{"owner_id": ownerID},
		bucketPredicate(q.Bucket),
	}

	if term := strings.TrimSpace(q.Search); term != "" {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"body": pattern},
		})
	}

	if q.TagID != nil {
		where = append(where, squirrel.Expr("? = ANY(tag_ids)", *q.TagID))
	}

	return where
}

// orderBy returns the composite sort key: pinned first, then most recently
// updated, then the requested field. id makes every page boundary stable.
func orderBy(q domain.NoteQuery) []string {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = sortColumns[domain.SortByOrderIndex]
	}
	dir := "ASC"
	if q.SortOrder == domain.SortDesc {
		dir = "DESC"
	}
	return []string{
		"is_pinned DESC",
		"updated_at DESC",
		col + " " + dir,
		"id ASC",
	}
}

func countQuery(ownerID uuid.UUID, q domain.NoteQuery) squirrel.SelectBuilder {
	return postgres.Builder.
		Select("count(*)").
		From("notes").
		Where(filterPredicate(ownerID, q))
}

func pageQuery(ownerID uuid.UUID, q domain.NoteQuery) squirrel.SelectBuilder {
	return postgres.Builder.
		Select(noteColumns...).
		From("notes").
		Where(filterPredicate(ownerID, q)).
		OrderBy(orderBy(q)...).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset()))
}
