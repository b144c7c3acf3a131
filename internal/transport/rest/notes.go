package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/service/note"
)

// noteService defines the note operations used by NoteHandler.
type noteService interface {
	CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	ListNotes(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error)
	ListArchived(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error)
	ListTrash(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error)
	GetNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	AddTag(ctx context.Context, input note.NoteTagInput) (*domain.Note, error)
	RemoveTag(ctx context.Context, input note.NoteTagInput) error
	PinNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	UnpinNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	ArchiveNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	UnarchiveNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	TrashNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	RestoreNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
	EmptyTrash(ctx context.Context) (int64, error)
}

// NoteHandler serves the /notes endpoints.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.CreateNote(r.Context(), note.CreateNoteInput{
		Title:    req.Title,
		Body:     req.Body,
		Color:    req.Color,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

// List handles GET /notes. The bucket query parameter selects the listing.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListNotes)
}

// ListArchived handles GET /notes/archive.
func (h *NoteHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListArchived)
}

// ListTrash handles GET /notes/trash.
func (h *NoteHandler) ListTrash(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListTrash)
}

func (h *NoteHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, note.ListNotesInput) (*domain.NotePage, error),
) {
	in, err := parseListQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := fn(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotePageResponse(page))
}

// Get handles GET /notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.GetNote)
}

// Update handles PATCH /notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.UpdateNote(r.Context(), note.UpdateNoteInput{
		NoteID:     id,
		Title:      req.Title,
		Body:       req.Body,
		Color:      req.Color,
		OrderIndex: req.OrderIndex,
		IsPinned:   req.IsPinned,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// AddTag handles PUT /notes/{id}/tags/{tagId}.
func (h *NoteHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	in, err := noteTagInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.AddTag(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// RemoveTag handles DELETE /notes/{id}/tags/{tagId}.
func (h *NoteHandler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	in, err := noteTagInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveTag(r.Context(), in); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Pin handles POST /notes/{id}/pin.
func (h *NoteHandler) Pin(w http.ResponseWriter, r *http.Request) { h.byID(w, r, h.svc.PinNote) }

// Unpin handles POST /notes/{id}/unpin.
func (h *NoteHandler) Unpin(w http.ResponseWriter, r *http.Request) { h.byID(w, r, h.svc.UnpinNote) }

// Archive handles POST /notes/{id}/archive.
func (h *NoteHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.ArchiveNote)
}

// Unarchive handles POST /notes/{id}/unarchive.
func (h *NoteHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.UnarchiveNote)
}

// Trash handles DELETE /notes/{id}.
func (h *NoteHandler) Trash(w http.ResponseWriter, r *http.Request) { h.byID(w, r, h.svc.TrashNote) }

// Restore handles POST /notes/{id}/restore.
func (h *NoteHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.RestoreNote)
}

// Delete handles DELETE /notes/trash/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EmptyTrash handles DELETE /notes/empty-trash.
func (h *NoteHandler) EmptyTrash(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.EmptyTrash(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyTrashResponse{DeletedCount: n})
}

func (h *NoteHandler) byID(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (*domain.Note, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

func noteTagInput(r *http.Request) (note.NoteTagInput, error) {
	noteID, err := pathID(r, "id")
	if err != nil {
		return note.NoteTagInput{}, err
	}
	tagID, err := pathID(r, "tagId")
	if err != nil {
		return note.NoteTagInput{}, err
	}
	return note.NoteTagInput{NoteID: noteID, TagID: tagID}, nil
}
