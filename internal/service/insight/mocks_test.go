package insight

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc         func(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error)
	UpdateAISummaryFunc func(ctx context.Context, userID, entryID uuid.UUID, summary string, actions []domain.SuggestedAction) error

	lock               sync.Mutex
	updateSummaryCalls []string
}

func (mock *entryRepoMock) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) UpdateAISummary(ctx context.Context, userID, entryID uuid.UUID, summary string, actions []domain.SuggestedAction) error {
	if mock.UpdateAISummaryFunc == nil {
		panic("entryRepoMock.UpdateAISummaryFunc: method is nil but entryRepo.UpdateAISummary was just called")
	}
	mock.lock.Lock()
	mock.updateSummaryCalls = append(mock.updateSummaryCalls, summary)
	mock.lock.Unlock()
	return mock.UpdateAISummaryFunc(ctx, userID, entryID, summary, actions)
}

func (mock *entryRepoMock) UpdateAISummaryCalls() []string {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.updateSummaryCalls
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

func (mock *projectRepoMock) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, projectID)
}

var _ commitmentRepo = &commitmentRepoMock{}

type commitmentRepoMock struct {
	CreateBatchFunc func(ctx context.Context, userID uuid.UUID, commitments []*domain.Commitment) ([]*domain.Commitment, error)

	lock  sync.Mutex
	calls [][]*domain.Commitment
}

func (mock *commitmentRepoMock) CreateBatch(ctx context.Context, userID uuid.UUID, commitments []*domain.Commitment) ([]*domain.Commitment, error) {
	if mock.CreateBatchFunc == nil {
		panic("commitmentRepoMock.CreateBatchFunc: method is nil but commitmentRepo.CreateBatch was just called")
	}
	mock.lock.Lock()
	mock.calls = append(mock.calls, commitments)
	mock.lock.Unlock()
	return mock.CreateBatchFunc(ctx, userID, commitments)
}

func (mock *commitmentRepoMock) CreateBatchCalls() [][]*domain.Commitment {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls
}

var _ aiGateway = &aiGatewayMock{}

type aiGatewayMock struct {
	SummarizeEntryFunc func(ctx context.Context, rawText, projectContext string) (*domain.EntrySummary, error)

	lock  sync.Mutex
	calls []struct {
		RawText        string
		ProjectContext string
	}
}

func (mock *aiGatewayMock) SummarizeEntry(ctx context.Context, rawText, projectContext string) (*domain.EntrySummary, error) {
	if mock.SummarizeEntryFunc == nil {
		panic("aiGatewayMock.SummarizeEntryFunc: method is nil but aiGateway.SummarizeEntry was just called")
	}
	mock.lock.Lock()
	mock.calls = append(mock.calls, struct {
		RawText        string
		ProjectContext string
	}{rawText, projectContext})
	mock.lock.Unlock()
	return mock.SummarizeEntryFunc(ctx, rawText, projectContext)
}

func (mock *aiGatewayMock) SummarizeEntryCalls() []struct {
	RawText        string
	ProjectContext string
} {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly, no transaction.
type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
