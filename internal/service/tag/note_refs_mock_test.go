package tag

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ noteRefs = &noteRefsMock{}

type noteRefsMock struct {
	StripTagsFunc func(ctx context.Context, ownerID uuid.UUID, tagIDs []uuid.UUID) (int64, error)

	StripDanglingTagsFunc func(ctx context.Context) (int64, error)

	calls struct {
		StripTags []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			TagIDs  []uuid.UUID
		}
		StripDanglingTags []struct {
			Ctx context.Context
		}
	}
	lockStripTags         sync.RWMutex
	lockStripDanglingTags sync.RWMutex
}

func (mock *noteRefsMock) StripTags(ctx context.Context, ownerID uuid.UUID, tagIDs []uuid.UUID) (int64, error) {
	if mock.StripTagsFunc == nil {
		panic("noteRefsMock.StripTagsFunc: method is nil but noteRefs.StripTags was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		TagIDs  []uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, TagIDs: tagIDs}
	mock.lockStripTags.Lock()
	mock.calls.StripTags = append(mock.calls.StripTags, callInfo)
	mock.lockStripTags.Unlock()
	return mock.StripTagsFunc(ctx, ownerID, tagIDs)
}

func (mock *noteRefsMock) StripTagsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	TagIDs  []uuid.UUID
} {
	mock.lockStripTags.RLock()
	calls := mock.calls.StripTags
	mock.lockStripTags.RUnlock()
	return calls
}

func (mock *noteRefsMock) StripDanglingTags(ctx context.Context) (int64, error) {
	if mock.StripDanglingTagsFunc == nil {
		panic("noteRefsMock.StripDanglingTagsFunc: method is nil but noteRefs.StripDanglingTags was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStripDanglingTags.Lock()
	mock.calls.StripDanglingTags = append(mock.calls.StripDanglingTags, callInfo)
	mock.lockStripDanglingTags.Unlock()
	return mock.StripDanglingTagsFunc(ctx)
}

func (mock *noteRefsMock) StripDanglingTagsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStripDanglingTags.RLock()
	calls := mock.calls.StripDanglingTags
	mock.lockStripDanglingTags.RUnlock()
	return calls
}
