package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog/internal/forms"
	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"
)

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetAll() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Update(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByPostID(postID uint) ([]models.Comment, error) {
	args := m.Called(postID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteByPostID(postID uint) error {
	args := m.Called(postID)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event string, payload interface{}) error {
	args := m.Called(event, payload)
	return args.Error(0)
}

func TestPostService_Create(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockComments := new(MockCommentRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewPostService(mockPosts, mockComments, mockPublisher)

	author := &models.User{ID: 1, Name: "Admin", Role: models.RoleAdmin}
	form := forms.PostForm{
		Title:    "A Day in the Life",
		Subtitle: "Notes from the field",
		Body:     "Lorem ipsum dolor sit amet.",
		ImageURL: "https://example.com/cover.jpg",
	}

	mockPosts.On("Create", mock.AnythingOfType("*models.Post")).Return(nil).Once()
	mockPublisher.On("Publish", "post.created", mock.Anything).Return(nil).Once()

	post, err := service.Create(form, author)
	assert.NoError(t, err)
	assert.Equal(t, form.Title, post.Title)
	assert.Equal(t, form.Subtitle, post.Subtitle)
	assert.Equal(t, form.Body, post.Body)
	assert.Equal(t, form.ImageURL, post.ImageURL)
	assert.Equal(t, author.ID, post.AuthorID)
	// The post is stamped with the current calendar date
	assert.Equal(t, time.Now().Format("January 2, 2006"), post.Date)
	mockPosts.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestPostService_CreateWithoutPublisher(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockComments := new(MockCommentRepository)
	service := services.NewPostService(mockPosts, mockComments, nil)

	mockPosts.On("Create", mock.AnythingOfType("*models.Post")).Return(nil).Once()

	_, err := service.Create(forms.PostForm{Title: "T", Subtitle: "S", Body: "B", ImageURL: "https://example.com/x.jpg"}, &models.User{ID: 1})
	assert.NoError(t, err)
	mockPosts.AssertExpectations(t)
}

func TestPostService_Update(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockComments := new(MockCommentRepository)
	service := services.NewPostService(mockPosts, mockComments, nil)

	existing := &models.Post{
		ID:       3,
		Title:    "Old Title",
		Subtitle: "Old Subtitle",
		Body:     "Old body",
		ImageURL: "https://example.com/old.jpg",
		Date:     "January 1, 2026",
		AuthorID: 1,
	}
	form := forms.PostForm{
		Title:    "New Title",
		Subtitle: "New Subtitle",
		Body:     "New body",
		ImageURL: "https://example.com/new.jpg",
	}

	mockPosts.On("GetByID", uint(3)).Return(existing, nil).Once()
	mockPosts.On("Update", mock.AnythingOfType("*models.Post")).Return(nil).Once()

	post, err := service.Update(3, form)
	assert.NoError(t, err)
	assert.Equal(t, "New Title", post.Title)
	assert.Equal(t, "New body", post.Body)
	// The author and original publication date are preserved
	assert.Equal(t, uint(1), post.AuthorID)
	assert.Equal(t, "January 1, 2026", post.Date)
	mockPosts.AssertExpectations(t)

	// Updating a missing post surfaces the not-found error
	mockPosts.On("GetByID", uint(99)).Return(nil, fmt.Errorf("post 99: %w", repositories.ErrNotFound)).Once()
	_, err = service.Update(99, form)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockPosts.AssertExpectations(t)
}

func TestPostService_Delete(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockComments := new(MockCommentRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewPostService(mockPosts, mockComments, mockPublisher)

	// Deleting a post removes its comments first, so none are orphaned
	mockComments.On("DeleteByPostID", uint(5)).Return(nil).Once()
	mockPosts.On("Delete", uint(5)).Return(nil).Once()
	mockPublisher.On("Publish", "post.deleted", mock.Anything).Return(nil).Once()

	err := service.Delete(5)
	assert.NoError(t, err)
	mockPosts.AssertExpectations(t)
	mockComments.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Deleting a missing post surfaces the not-found error and publishes
	// nothing
	mockComments.On("DeleteByPostID", uint(99)).Return(nil).Once()
	mockPosts.On("Delete", uint(99)).Return(fmt.Errorf("post 99: %w", repositories.ErrNotFound)).Once()

	err = service.Delete(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockPublisher.AssertNumberOfCalls(t, "Publish", 1)
	mockPosts.AssertExpectations(t)
	mockComments.AssertExpectations(t)
}

func TestPostService_List(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockComments := new(MockCommentRepository)
	service := services.NewPostService(mockPosts, mockComments, nil)

	expected := []models.Post{
		{ID: 1, Title: "First"},
		{ID: 2, Title: "Second"},
	}
	mockPosts.On("GetAll").Return(expected, nil).Once()

	posts, err := service.List()
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, expected, posts)
	mockPosts.AssertExpectations(t)
}
