package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/service/tag"
	"sync"
)

var _ tagService = &tagServiceMock{}

type tagServiceMock struct {
	CreateTagFunc func(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)

	ListTagsWithCountsFunc func(ctx context.Context) ([]domain.TagWithCount, error)

	UpdateTagFunc func(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error)

	DeleteTagFunc func(ctx context.Context, tagID uuid.UUID) error

	DeleteTagsFunc func(ctx context.Context, input tag.DeleteTagsInput) error

	calls struct {
		CreateTag []struct {
			Ctx   context.Context
			Input tag.CreateTagInput
		}
		ListTagsWithCounts []struct {
			Ctx context.Context
		}
		UpdateTag []struct {
			Ctx   context.Context
			Input tag.UpdateTagInput
		}
		DeleteTag []struct {
			Ctx   context.Context
			TagID uuid.UUID
		}
		DeleteTags []struct {
			Ctx   context.Context
			Input tag.DeleteTagsInput
		}
	}
	lockCreateTag          sync.RWMutex
	lockListTagsWithCounts sync.RWMutex
	lockUpdateTag          sync.RWMutex
	lockDeleteTag          sync.RWMutex
	lockDeleteTags         sync.RWMutex
}

func (mock *tagServiceMock) CreateTag(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error) {
	if mock.CreateTagFunc == nil {
		panic("tagServiceMock.CreateTagFunc: method is nil but tagService.CreateTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.CreateTagInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTag.Lock()
	mock.calls.CreateTag = append(mock.calls.CreateTag, callInfo)
	mock.lockCreateTag.Unlock()
	return mock.CreateTagFunc(ctx, input)
}

func (mock *tagServiceMock) CreateTagCalls() []struct {
	Ctx   context.Context
	Input tag.CreateTagInput
} {
	mock.lockCreateTag.RLock()
	calls := mock.calls.CreateTag
	mock.lockCreateTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) ListTagsWithCounts(ctx context.Context) ([]domain.TagWithCount, error) {
	if mock.ListTagsWithCountsFunc == nil {
		panic("tagServiceMock.ListTagsWithCountsFunc: method is nil but tagService.ListTagsWithCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTagsWithCounts.Lock()
	mock.calls.ListTagsWithCounts = append(mock.calls.ListTagsWithCounts, callInfo)
	mock.lockListTagsWithCounts.Unlock()
	return mock.ListTagsWithCountsFunc(ctx)
}

func (mock *tagServiceMock) ListTagsWithCountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTagsWithCounts.RLock()
	calls := mock.calls.ListTagsWithCounts
	mock.lockListTagsWithCounts.RUnlock()
	return calls
}

func (mock *tagServiceMock) UpdateTag(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error) {
	if mock.UpdateTagFunc == nil {
		panic("tagServiceMock.UpdateTagFunc: method is nil but tagService.UpdateTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.UpdateTagInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateTag.Lock()
	mock.calls.UpdateTag = append(mock.calls.UpdateTag, callInfo)
	mock.lockUpdateTag.Unlock()
	return mock.UpdateTagFunc(ctx, input)
}

func (mock *tagServiceMock) UpdateTagCalls() []struct {
	Ctx   context.Context
	Input tag.UpdateTagInput
} {
	mock.lockUpdateTag.RLock()
	calls := mock.calls.UpdateTag
	mock.lockUpdateTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	if mock.DeleteTagFunc == nil {
		panic("tagServiceMock.DeleteTagFunc: method is nil but tagService.DeleteTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		TagID uuid.UUID
	}{Ctx: ctx, TagID: tagID}
	mock.lockDeleteTag.Lock()
	mock.calls.DeleteTag = append(mock.calls.DeleteTag, callInfo)
	mock.lockDeleteTag.Unlock()
	return mock.DeleteTagFunc(ctx, tagID)
}

func (mock *tagServiceMock) DeleteTagCalls() []struct {
	Ctx   context.Context
	TagID uuid.UUID
} {
	mock.lockDeleteTag.RLock()
	calls := mock.calls.DeleteTag
	mock.lockDeleteTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) DeleteTags(ctx context.Context, input tag.DeleteTagsInput) error {
	if mock.DeleteTagsFunc == nil {
		panic("tagServiceMock.DeleteTagsFunc: method is nil but tagService.DeleteTags was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.DeleteTagsInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteTags.Lock()
	mock.calls.DeleteTags = append(mock.calls.DeleteTags, callInfo)
	mock.lockDeleteTags.Unlock()
	return mock.DeleteTagsFunc(ctx, input)
}

func (mock *tagServiceMock) DeleteTagsCalls() []struct {
	Ctx   context.Context
	Input tag.DeleteTagsInput
} {
	mock.lockDeleteTags.RLock()
	calls := mock.calls.DeleteTags
	mock.lockDeleteTags.RUnlock()
	return calls
}
