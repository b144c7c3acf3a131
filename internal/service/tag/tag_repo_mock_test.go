package tag

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"sync"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	CountFunc func(ctx context.Context, ownerID uuid.UUID) (int, error)

	ListWithCountsFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.TagWithCount, error)

	CreateFunc func(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Tag, error)

	RenameFunc func(ctx context.Context, ownerID, id uuid.UUID, name string) (*domain.Tag, error)

	DeleteFunc func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		Count []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListWithCounts []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Name    string
		}
		Rename []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
			Name    string
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Ids     []uuid.UUID
		}
	}
	lockCount          sync.RWMutex
	lockListWithCounts sync.RWMutex
	lockCreate         sync.RWMutex
	lockRename         sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *tagRepoMock) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("tagRepoMock.CountFunc: method is nil but tagRepo.Count was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, ownerID)
}

func (mock *tagRepoMock) CountCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *tagRepoMock) ListWithCounts(ctx context.Context, ownerID uuid.UUID) ([]domain.TagWithCount, error) {
	if mock.ListWithCountsFunc == nil {
		panic("tagRepoMock.ListWithCountsFunc: method is nil but tagRepo.ListWithCounts was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListWithCounts.Lock()
	mock.calls.ListWithCounts = append(mock.calls.ListWithCounts, callInfo)
	mock.lockListWithCounts.Unlock()
	return mock.ListWithCountsFunc(ctx, ownerID)
}

func (mock *tagRepoMock) ListWithCountsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListWithCounts.RLock()
	calls := mock.calls.ListWithCounts
	mock.lockListWithCounts.RUnlock()
	return calls
}

func (mock *tagRepoMock) Create(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Tag, error) {
	if mock.CreateFunc == nil {
		panic("tagRepoMock.CreateFunc: method is nil but tagRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Name    string
	}{Ctx: ctx, OwnerID: ownerID, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, name)
}

func (mock *tagRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Name    string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tagRepoMock) Rename(ctx context.Context, ownerID, id uuid.UUID, name string) (*domain.Tag, error) {
	if mock.RenameFunc == nil {
		panic("tagRepoMock.RenameFunc: method is nil but tagRepo.Rename was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
		Name    string
	}{Ctx: ctx, OwnerID: ownerID, Id: id, Name: name}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, ownerID, id, name)
}

func (mock *tagRepoMock) RenameCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
	Name    string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *tagRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Ids     []uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Ids: ids}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, ids)
}

func (mock *tagRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Ids     []uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
