package note

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"sync"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetByIDFunc func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Tag, error)

	ExistingIDsFunc func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		ExistingIDs []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Ids     []uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockExistingIDs sync.RWMutex
}

func (mock *tagRepoMock) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Tag, error) {
	if mock.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *tagRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tagRepoMock) ExistingIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.ExistingIDsFunc == nil {
		panic("tagRepoMock.ExistingIDsFunc: method is nil but tagRepo.ExistingIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Ids     []uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Ids: ids}
	mock.lockExistingIDs.Lock()
	mock.calls.ExistingIDs = append(mock.calls.ExistingIDs, callInfo)
	mock.lockExistingIDs.Unlock()
	return mock.ExistingIDsFunc(ctx, ownerID, ids)
}

func (mock *tagRepoMock) ExistingIDsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Ids     []uuid.UUID
} {
	mock.lockExistingIDs.RLock()
	calls := mock.calls.ExistingIDs
	mock.lockExistingIDs.RUnlock()
	return calls
}
