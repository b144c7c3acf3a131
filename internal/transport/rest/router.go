package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/notekeeper-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Notes  *NoteHandler
	Tags   *TagHandler
	Health *HealthHandler
}

// NewRouter registers all routes. Note and tag routes are wrapped with
// requireOwner; probes and metrics are public.
func NewRouter(h Handlers, requireOwner middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	owned := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, requireOwner(fn))
	}

	owned("POST /notes", h.Notes.Create)
	owned("GET /notes", h.Notes.List)
	owned("GET /notes/archive", h.Notes.ListArchived)
	owned("GET /notes/trash", h.Notes.ListTrash)
	owned("DELETE /notes/empty-trash", h.Notes.EmptyTrash)
	owned("DELETE /notes/trash/{id}", h.Notes.Delete)
	owned("GET /notes/{id}", h.Notes.Get)
	owned("PATCH /notes/{id}", h.Notes.Update)
	owned("DELETE /notes/{id}", h.Notes.Trash)
	owned("POST /notes/{id}/pin", h.Notes.Pin)
	owned("POST /notes/{id}/unpin", h.Notes.Unpin)
	owned("POST /notes/{id}/archive", h.Notes.Archive)
	owned("POST /notes/{id}/unarchive", h.Notes.Unarchive)
	owned("POST /notes/{id}/restore", h.Notes.Restore)
	owned("PUT /notes/{id}/tags/{tagId}", h.Notes.AddTag)
	owned("DELETE /notes/{id}/tags/{tagId}", h.Notes.RemoveTag)

	owned("POST /tags", h.Tags.Create)
	owned("GET /tags", h.Tags.List)
	owned("POST /tags/bulk-delete", h.Tags.BulkDelete)
	owned("PATCH /tags/{id}", h.Tags.Update)
	owned("DELETE /tags/{id}", h.Tags.Delete)

	return mux
}
