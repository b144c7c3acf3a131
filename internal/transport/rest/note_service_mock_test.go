package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/service/note"
	"sync"
)

var _ noteService = &noteServiceMock{}

type noteServiceMock struct {
	CreateNoteFunc func(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)

	ListNotesFunc func(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error)

	ListArchivedFunc func(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error)

	ListTrashFunc func(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error)

	GetNoteFunc func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)

	UpdateNoteFunc func(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)

	AddTagFunc func(ctx context.Context, input note.NoteTagInput) (*domain.Note, error)

	RemoveTagFunc func(ctx context.Context, input note.NoteTagInput) error

	PinNoteFunc func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)

	UnpinNoteFunc func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)

	ArchiveNoteFunc func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)

	UnarchiveNoteFunc func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)

	TrashNoteFunc func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)

	RestoreNoteFunc func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)

	DeleteNoteFunc func(ctx context.Context, noteID uuid.UUID) error

	EmptyTrashFunc func(ctx context.Context) (int64, error)

	calls struct {
		CreateNote []struct {
			Ctx   context.Context
			Input note.CreateNoteInput
		}
		ListNotes []struct {
			Ctx   context.Context
			Input note.ListNotesInput
		}
		ListArchived []struct {
			Ctx   context.Context
			Input note.ListNotesInput
		}
		ListTrash []struct {
			Ctx   context.Context
			Input note.ListNotesInput
		}
		GetNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		UpdateNote []struct {
			Ctx   context.Context
			Input note.UpdateNoteInput
		}
		AddTag []struct {
			Ctx   context.Context
			Input note.NoteTagInput
		}
		RemoveTag []struct {
			Ctx   context.Context
			Input note.NoteTagInput
		}
		PinNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		UnpinNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		ArchiveNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		UnarchiveNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		TrashNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		RestoreNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		DeleteNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		EmptyTrash []struct {
			Ctx context.Context
		}
	}
	lockCreateNote    sync.RWMutex
	lockListNotes     sync.RWMutex
	lockListArchived  sync.RWMutex
	lockListTrash     sync.RWMutex
	lockGetNote       sync.RWMutex
	lockUpdateNote    sync.RWMutex
	lockAddTag        sync.RWMutex
	lockRemoveTag     sync.RWMutex
	lockPinNote       sync.RWMutex
	lockUnpinNote     sync.RWMutex
	lockArchiveNote   sync.RWMutex
	lockUnarchiveNote sync.RWMutex
	lockTrashNote     sync.RWMutex
	lockRestoreNote   sync.RWMutex
	lockDeleteNote    sync.RWMutex
	lockEmptyTrash    sync.RWMutex
}

func (mock *noteServiceMock) CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error) {
	if mock.CreateNoteFunc == nil {
		panic("noteServiceMock.CreateNoteFunc: method is nil but noteService.CreateNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.CreateNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateNote.Lock()
	mock.calls.CreateNote = append(mock.calls.CreateNote, callInfo)
	mock.lockCreateNote.Unlock()
	return mock.CreateNoteFunc(ctx, input)
}

func (mock *noteServiceMock) CreateNoteCalls() []struct {
	Ctx   context.Context
	Input note.CreateNoteInput
} {
	mock.lockCreateNote.RLock()
	calls := mock.calls.CreateNote
	mock.lockCreateNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) ListNotes(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error) {
	if mock.ListNotesFunc == nil {
		panic("noteServiceMock.ListNotesFunc: method is nil but noteService.ListNotes was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.ListNotesInput
	}{Ctx: ctx, Input: input}
	mock.lockListNotes.Lock()
	mock.calls.ListNotes = append(mock.calls.ListNotes, callInfo)
	mock.lockListNotes.Unlock()
	return mock.ListNotesFunc(ctx, input)
}

func (mock *noteServiceMock) ListNotesCalls() []struct {
	Ctx   context.Context
	Input note.ListNotesInput
} {
	mock.lockListNotes.RLock()
	calls := mock.calls.ListNotes
	mock.lockListNotes.RUnlock()
	return calls
}

func (mock *noteServiceMock) ListArchived(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error) {
	if mock.ListArchivedFunc == nil {
		panic("noteServiceMock.ListArchivedFunc: method is nil but noteService.ListArchived was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.ListNotesInput
	}{Ctx: ctx, Input: input}
	mock.lockListArchived.Lock()
	mock.calls.ListArchived = append(mock.calls.ListArchived, callInfo)
	mock.lockListArchived.Unlock()
	return mock.ListArchivedFunc(ctx, input)
}

func (mock *noteServiceMock) ListArchivedCalls() []struct {
	Ctx   context.Context
	Input note.ListNotesInput
} {
	mock.lockListArchived.RLock()
	calls := mock.calls.ListArchived
	mock.lockListArchived.RUnlock()
	return calls
}

func (mock *noteServiceMock) ListTrash(ctx context.Context, input note.ListNotesInput) (*domain.NotePage, error) {
	if mock.ListTrashFunc == nil {
		panic("noteServiceMock.ListTrashFunc: method is nil but noteService.ListTrash was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.ListNotesInput
	}{Ctx: ctx, Input: input}
	mock.lockListTrash.Lock()
	mock.calls.ListTrash = append(mock.calls.ListTrash, callInfo)
	mock.lockListTrash.Unlock()
	return mock.ListTrashFunc(ctx, input)
}

func (mock *noteServiceMock) ListTrashCalls() []struct {
	Ctx   context.Context
	Input note.ListNotesInput
} {
	mock.lockListTrash.RLock()
	calls := mock.calls.ListTrash
	mock.lockListTrash.RUnlock()
	return calls
}

func (mock *noteServiceMock) GetNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.GetNoteFunc == nil {
		panic("noteServiceMock.GetNoteFunc: method is nil but noteService.GetNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{Ctx: ctx, NoteID: noteID}
	mock.lockGetNote.Lock()
	mock.calls.GetNote = append(mock.calls.GetNote, callInfo)
	mock.lockGetNote.Unlock()
	return mock.GetNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) GetNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockGetNote.RLock()
	calls := mock.calls.GetNote
	mock.lockGetNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error) {
	if mock.UpdateNoteFunc == nil {
		panic("noteServiceMock.UpdateNoteFunc: method is nil but noteService.UpdateNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.UpdateNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateNote.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, callInfo)
	mock.lockUpdateNote.Unlock()
	return mock.UpdateNoteFunc(ctx, input)
}

func (mock *noteServiceMock) UpdateNoteCalls() []struct {
	Ctx   context.Context
	Input note.UpdateNoteInput
} {
	mock.lockUpdateNote.RLock()
	calls := mock.calls.UpdateNote
	mock.lockUpdateNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) AddTag(ctx context.Context, input note.NoteTagInput) (*domain.Note, error) {
	if mock.AddTagFunc == nil {
		panic("noteServiceMock.AddTagFunc: method is nil but noteService.AddTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.NoteTagInput
	}{Ctx: ctx, Input: input}
	mock.lockAddTag.Lock()
	mock.calls.AddTag = append(mock.calls.AddTag, callInfo)
	mock.lockAddTag.Unlock()
	return mock.AddTagFunc(ctx, input)
}

func (mock *noteServiceMock) AddTagCalls() []struct {
	Ctx   context.Context
	Input note.NoteTagInput
} {
	mock.lockAddTag.RLock()
	calls := mock.calls.AddTag
	mock.lockAddTag.RUnlock()
	return calls
}

func (mock *noteServiceMock) RemoveTag(ctx context.Context, input note.NoteTagInput) error {
	if mock.RemoveTagFunc == nil {
		panic("noteServiceMock.RemoveTagFunc: method is nil but noteService.RemoveTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.NoteTagInput
	}{Ctx: ctx, Input: input}
	mock.lockRemoveTag.Lock()
	mock.calls.RemoveTag = append(mock.calls.RemoveTag, callInfo)
	mock.lockRemoveTag.Unlock()
	return mock.RemoveTagFunc(ctx, input)
}

func (mock *noteServiceMock) RemoveTagCalls() []struct {
	Ctx   context.Context
	Input note.NoteTagInput
} {
	mock.lockRemoveTag.RLock()
	calls := mock.calls.RemoveTag
	mock.lockRemoveTag.RUnlock()
	return calls
}

func (mock *noteServiceMock) PinNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.PinNoteFunc == nil {
		panic("noteServiceMock.PinNoteFunc: method is nil but noteService.PinNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{Ctx: ctx, NoteID: noteID}
	mock.lockPinNote.Lock()
	mock.calls.PinNote = append(mock.calls.PinNote, callInfo)
	mock.lockPinNote.Unlock()
	return mock.PinNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) PinNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockPinNote.RLock()
	calls := mock.calls.PinNote
	mock.lockPinNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) UnpinNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.UnpinNoteFunc == nil {
		panic("noteServiceMock.UnpinNoteFunc: method is nil but noteService.UnpinNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{Ctx: ctx, NoteID: noteID}
	mock.lockUnpinNote.Lock()
	mock.calls.UnpinNote = append(mock.calls.UnpinNote, callInfo)
	mock.lockUnpinNote.Unlock()
	return mock.UnpinNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) UnpinNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockUnpinNote.RLock()
	calls := mock.calls.UnpinNote
	mock.lockUnpinNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) ArchiveNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.ArchiveNoteFunc == nil {
		panic("noteServiceMock.ArchiveNoteFunc: method is nil but noteService.ArchiveNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{Ctx: ctx, NoteID: noteID}
	mock.lockArchiveNote.Lock()
	mock.calls.ArchiveNote = append(mock.calls.ArchiveNote, callInfo)
	mock.lockArchiveNote.Unlock()
	return mock.ArchiveNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) ArchiveNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockArchiveNote.RLock()
	calls := mock.calls.ArchiveNote
	mock.lockArchiveNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) UnarchiveNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.UnarchiveNoteFunc == nil {
		panic("noteServiceMock.UnarchiveNoteFunc: method is nil but noteService.UnarchiveNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{Ctx: ctx, NoteID: noteID}
	mock.lockUnarchiveNote.Lock()
	mock.calls.UnarchiveNote = append(mock.calls.UnarchiveNote, callInfo)
	mock.lockUnarchiveNote.Unlock()
	return mock.UnarchiveNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) UnarchiveNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockUnarchiveNote.RLock()
	calls := mock.calls.UnarchiveNote
	mock.lockUnarchiveNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) TrashNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.TrashNoteFunc == nil {
		panic("noteServiceMock.TrashNoteFunc: method is nil but noteService.TrashNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{Ctx: ctx, NoteID: noteID}
	mock.lockTrashNote.Lock()
	mock.calls.TrashNote = append(mock.calls.TrashNote, callInfo)
	mock.lockTrashNote.Unlock()
	return mock.TrashNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) TrashNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockTrashNote.RLock()
	calls := mock.calls.TrashNote
	mock.lockTrashNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) RestoreNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.RestoreNoteFunc == nil {
		panic("noteServiceMock.RestoreNoteFunc: method is nil but noteService.RestoreNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{Ctx: ctx, NoteID: noteID}
	mock.lockRestoreNote.Lock()
	mock.calls.RestoreNote = append(mock.calls.RestoreNote, callInfo)
	mock.lockRestoreNote.Unlock()
	return mock.RestoreNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) RestoreNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockRestoreNote.RLock()
	calls := mock.calls.RestoreNote
	mock.lockRestoreNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	if mock.DeleteNoteFunc == nil {
		panic("noteServiceMock.DeleteNoteFunc: method is nil but noteService.DeleteNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{Ctx: ctx, NoteID: noteID}
	mock.lockDeleteNote.Lock()
	mock.calls.DeleteNote = append(mock.calls.DeleteNote, callInfo)
	mock.lockDeleteNote.Unlock()
	return mock.DeleteNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) DeleteNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockDeleteNote.RLock()
	calls := mock.calls.DeleteNote
	mock.lockDeleteNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) EmptyTrash(ctx context.Context) (int64, error) {
	if mock.EmptyTrashFunc == nil {
		panic("noteServiceMock.EmptyTrashFunc: method is nil but noteService.EmptyTrash was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockEmptyTrash.Lock()
	mock.calls.EmptyTrash = append(mock.calls.EmptyTrash, callInfo)
	mock.lockEmptyTrash.Unlock()
	return mock.EmptyTrashFunc(ctx)
}

func (mock *noteServiceMock) EmptyTrashCalls() []struct {
	Ctx context.Context
} {
	mock.lockEmptyTrash.RLock()
	calls := mock.calls.EmptyTrash
	mock.lockEmptyTrash.RUnlock()
	return calls
}
