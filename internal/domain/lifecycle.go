package domain

// NoteState is the visibility state of a note.
type NoteState string

const (
	NoteStateActive   NoteState = "ACTIVE"
	NoteStateArchived NoteState = "ARCHIVED"
	NoteStateTrashed  NoteState = "TRASHED"
)

func (s NoteState) String() string { return string(s) }

// Bucket maps a state onto the listing bucket that shows it.
func (s NoteState) Bucket() Bucket {
	switch s {
	case NoteStateArchived:
		return BucketArchive
	case NoteStateTrashed:
		return BucketTrash
	default:
		return BucketActive
	}
}

// LifecycleEvent is a command that moves a note between states.
type LifecycleEvent string

const (
	EventArchive         LifecycleEvent = "archive"
	EventUnarchive       LifecycleEvent = "unarchive"
	EventTrash           LifecycleEvent = "trash"
	EventRestore         LifecycleEvent = "restore"
	EventPermanentDelete LifecycleEvent = "permanently delete"
	EventPin             LifecycleEvent = "pin"
	EventUnpin           LifecycleEvent = "unpin"
)

func (e LifecycleEvent) String() string { return string(e) }

// Transition is the outcome of applying an event to a state.
type Transition struct {
	From  NoteState
	To    NoteState
	Patch NoteUpdateParams
	// Destroy is set when the record must be removed instead of patched.
	Destroy bool
}

type transitionKey struct {
	from  NoteState
	event LifecycleEvent
}

var (
	vTrue  = true
	vFalse = false
)

// transitions is the complete table. Anything absent is rejected.
var transitions = map[transitionKey]Transition{
	{NoteStateActive, EventArchive}: {
		To:    NoteStateArchived,
		Patch: NoteUpdateParams{IsArchived: &vTrue, IsPinned: &vFalse},
	},
	{NoteStateArchived, EventUnarchive}: {
		To:    NoteStateActive,
		Patch: NoteUpdateParams{IsArchived: &vFalse},
	},
	{NoteStateActive, EventTrash}: {
		To:    NoteStateTrashed,
		Patch: NoteUpdateParams{IsTrashed: &vTrue, IsArchived: &vFalse, IsPinned: &vFalse},
	},
	{NoteStateArchived, EventTrash}: {
		To:    NoteStateTrashed,
		Patch: NoteUpdateParams{IsTrashed: &vTrue, IsArchived: &vFalse, IsPinned: &vFalse},
	},
	{NoteStateTrashed, EventRestore}: {
		To:    NoteStateActive,
		Patch: NoteUpdateParams{IsTrashed: &vFalse, IsArchived: &vFalse},
	},
	{NoteStateTrashed, EventPermanentDelete}: {
		Destroy: true,
	},
	{NoteStateActive, EventPin}: {
		To:    NoteStateActive,
		Patch: NoteUpdateParams{IsPinned: &vTrue},
	},
	{NoteStateActive, EventUnpin}: {
		To:    NoteStateActive,
		Patch: NoteUpdateParams{IsPinned: &vFalse},
	},
}

// ApplyEvent looks up the transition for event from state. It returns a
// *TransitionError (ErrPreconditionFailed) when the event is not valid there.
// The returned patch is a fresh copy and may be modified by the caller.
func ApplyEvent(from NoteState, event LifecycleEvent) (Transition, error) {
	t, ok := transitions[transitionKey{from, event}]
	if !ok {
		return Transition{}, &TransitionError{From: from, Event: event}
	}
	t.From = from
	t.Patch = copyFlags(t.Patch)
	return t, nil
}

func copyFlags(p NoteUpdateParams) NoteUpdateParams {
	return NoteUpdateParams{
		IsPinned:   copyBool(p.IsPinned),
		IsArchived: copyBool(p.IsArchived),
		IsTrashed:  copyBool(p.IsTrashed),
	}
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
