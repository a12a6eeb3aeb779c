package member

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, member *Member) (*Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, member *Member) (*Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, slog.Default())
	s.now = func() time.Time { return testNow }
	return s
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("List", mock.Anything).Return([]Member{{ID: testID, FirstName: "Ada"}}, nil)

	members, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, members, 1)

	mockRepo.AssertExpectations(t)
}

func TestService_List_Empty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("List", mock.Anything).Return(nil, nil)

	members, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, members, "empty list must serialize as []")
}

func TestService_Find(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Get", mock.Anything, testID).Return(&Member{ID: testID}, nil)

	m, err := service.Find(context.Background(), testID)
	assert.NoError(t, err)
	assert.Equal(t, testID, m.ID)
}

func TestService_Find_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Get", mock.Anything, testID).Return(nil, ErrNotFound)

	_, err := service.Find(context.Background(), testID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Невалидный id не доходит до репозитория
	_, err = service.Find(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertNumberOfCalls(t, "Get", 1)
}

func TestService_Create_GeneratesID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *Member) bool {
		_, err := ParseID(m.ID)
		return err == nil &&
			m.FirstName == "Ada" &&
			m.SyncStatus == SyncStatusSynced &&
			m.UpdatedAt.Equal(testNow)
	})).Return(&Member{ID: testID, FirstName: "Ada"}, nil)

	m, err := service.Create(context.Background(), RawRecord{"firstName": "Ada", "lastName": "Obi"})
	require.NoError(t, err)
	assert.Equal(t, testID, m.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Invalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Create(context.Background(), RawRecord{"firstName": "Ada"})
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = service.Create(context.Background(), RawRecord{"id": "x", "firstName": "Ada", "lastName": "Obi"})
	assert.ErrorIs(t, err, ErrInvalidID)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_Duplicate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrAlreadyExists)

	_, err := service.Create(context.Background(), RawRecord{"id": testID, "firstName": "Ada", "lastName": "Obi"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	existing := &Member{ID: testID, FirstName: "Ada", LastName: "Obi", SyncStatus: SyncStatusSynced}
	mockRepo.On("Get", mock.Anything, testID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *Member) bool {
		return m.ID == testID && m.FirstName == "Ada" && m.LastName == "Okafor" && m.UpdatedAt.Equal(testNow)
	})).Return(&Member{ID: testID, FirstName: "Ada", LastName: "Okafor"}, nil)

	m, err := service.Update(context.Background(), testID, RawRecord{"lastName": "Okafor"})
	require.NoError(t, err)
	assert.Equal(t, "Okafor", m.LastName)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Get", mock.Anything, testID).Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), testID, RawRecord{"lastName": "Okafor"})
	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Delete", mock.Anything, testID).Return(nil).Once()
	assert.NoError(t, service.Delete(context.Background(), testID))

	mockRepo.On("Delete", mock.Anything, testID).Return(ErrNotFound).Once()
	assert.ErrorIs(t, service.Delete(context.Background(), testID), ErrNotFound)

	mockRepo.On("Delete", mock.Anything, testID).Return(errors.New("connection reset")).Once()
	err := service.Delete(context.Background(), testID)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
