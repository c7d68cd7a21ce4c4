package capture

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, e *domain.Entry) (*domain.Entry, error)

	lock  sync.Mutex
	calls []*domain.Entry
}

func (mock *entryRepoMock) Create(ctx context.Context, userID uuid.UUID, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls = append(mock.calls, e)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, e)
}

func (mock *entryRepoMock) CreateCalls() []*domain.Entry {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls
}

var _ commitmentRepo = &commitmentRepoMock{}

type commitmentRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, c *domain.Commitment) (*domain.Commitment, error)

	lock  sync.Mutex
	calls []*domain.Commitment
}

func (mock *commitmentRepoMock) Create(ctx context.Context, userID uuid.UUID, c *domain.Commitment) (*domain.Commitment, error) {
	if mock.CreateFunc == nil {
		panic("commitmentRepoMock.CreateFunc: method is nil but commitmentRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls = append(mock.calls, c)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, c)
}

func (mock *commitmentRepoMock) CreateCalls() []*domain.Commitment {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls
}

var _ reflectionRepo = &reflectionRepoMock{}

type reflectionRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, r *domain.Reflection) (*domain.Reflection, error)

	lock  sync.Mutex
	calls []*domain.Reflection
}

func (mock *reflectionRepoMock) Create(ctx context.Context, userID uuid.UUID, r *domain.Reflection) (*domain.Reflection, error) {
	if mock.CreateFunc == nil {
		panic("reflectionRepoMock.CreateFunc: method is nil but reflectionRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls = append(mock.calls, r)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, r)
}

func (mock *reflectionRepoMock) CreateCalls() []*domain.Reflection {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	TouchLastActiveFunc func(ctx context.Context, userID, projectID uuid.UUID, activeAt time.Time) error

	lock  sync.Mutex
	calls []time.Time
}

func (mock *projectRepoMock) TouchLastActive(ctx context.Context, userID, projectID uuid.UUID, activeAt time.Time) error {
	if mock.TouchLastActiveFunc == nil {
		panic("projectRepoMock.TouchLastActiveFunc: method is nil but projectRepo.TouchLastActive was just called")
	}
	mock.lock.Lock()
	mock.calls = append(mock.calls, activeAt)
	mock.lock.Unlock()
	return mock.TouchLastActiveFunc(ctx, userID, projectID, activeAt)
}

func (mock *projectRepoMock) TouchLastActiveCalls() []time.Time {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls
}
