package services_test

import (
	"fmt"
	"testing"

	"ulasan/internal/models"
	"ulasan/internal/repositories"
	"ulasan/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetAll() ([]models.Review, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

// MockPublisher is a mock implementation of services.ReviewEventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishReviewCreated(payload map[string]interface{}) error {
	args := m.Called(payload)
	return args.Error(0)
}

func TestReviewService_Create(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockPub := new(MockPublisher)
	service := services.NewReviewService(mockRepo, mockPub)

	// Test successful creation with comment trimming
	var created *models.Review
	mockRepo.On("Create", mock.AnythingOfType("*models.Review")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Review)
		created.ID = "rev-1"
	}).Return(nil).Once()
	mockPub.On("PublishReviewCreated", mock.Anything).Return(nil).Once()

	review, err := service.Create("user-1", 4, "  great stuff  ")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", review.UserID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "great stuff", review.Comment)
	assert.Equal(t, created, review)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := services.NewReviewService(mockRepo, nil)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := service.Create("user-1", rating, "fine")
		assert.ErrorIs(t, err, services.ErrInvalidRating, "rating %d", rating)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewService_Create_EmptyComment(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := services.NewReviewService(mockRepo, nil)

	// Whitespace-only comments are empty after trimming
	for _, comment := range []string{"", "   ", "\n\t "} {
		_, err := service.Create("user-1", 3, comment)
		assert.ErrorIs(t, err, services.ErrEmptyComment, "comment %q", comment)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewService_Create_StoreFailure(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockPub := new(MockPublisher)
	service := services.NewReviewService(mockRepo, mockPub)

	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("database error")).Once()

	_, err := service.Create("user-1", 3, "fine")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	// No event for a review that was never persisted
	mockPub.AssertNotCalled(t, "PublishReviewCreated", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestReviewService_Create_PublishFailureIsBestEffort(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockPub := new(MockPublisher)
	service := services.NewReviewService(mockRepo, mockPub)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	mockPub.On("PublishReviewCreated", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	review, err := service.Create("user-1", 5, "still works")
	assert.NoError(t, err)
	assert.NotNil(t, review)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestReviewService_List(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := services.NewReviewService(mockRepo, nil)

	expected := []models.Review{
		{ID: "2", Rating: 5, Comment: "newest"},
		{ID: "1", Rating: 3, Comment: "older"},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	reviews, err := service.List()
	assert.NoError(t, err)
	assert.Equal(t, expected, reviews)
	mockRepo.AssertExpectations(t)
}

func TestReviewService_Get(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := services.NewReviewService(mockRepo, nil)

	expected := &models.Review{ID: "rev-1", Rating: 4, Comment: "found"}

	// Test successful retrieval
	mockRepo.On("GetByID", "rev-1").Return(expected, nil).Once()
	review, err := service.Get("rev-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, review)
	mockRepo.AssertExpectations(t)

	// Test review not found
	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("review with ID missing: %w", repositories.ErrNotFound)).Once()
	_, err = service.Get("missing")
	assert.ErrorIs(t, err, services.ErrReviewNotFound)
	mockRepo.AssertExpectations(t)

	// Test store failure surfaces as-is
	mockRepo.On("GetByID", "rev-1").Return(nil, fmt.Errorf("database unavailable")).Once()
	_, err = service.Get("rev-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrReviewNotFound)
	mockRepo.AssertExpectations(t)
}
