package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"
)

func TestCommentService_Add(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewCommentService(mockComments, mockPosts, mockPublisher)

	author := &models.User{ID: 2, Name: "Reader", Role: models.RoleUser}
	post := &models.Post{ID: 4, Title: "A Post"}

	mockPosts.On("GetByID", uint(4)).Return(post, nil).Once()
	mockComments.On("Create", mock.AnythingOfType("*models.Comment")).Return(nil).Once()
	mockPublisher.On("Publish", "comment.created", mock.Anything).Return(nil).Once()

	comment, err := service.Add(4, author, "Great read!")
	assert.NoError(t, err)
	assert.Equal(t, "Great read!", comment.Body)
	assert.Equal(t, uint(4), comment.PostID)
	assert.Equal(t, uint(2), comment.AuthorID)
	mockPosts.AssertExpectations(t)
	mockComments.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestCommentService_AddToMissingPost(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	service := services.NewCommentService(mockComments, mockPosts, nil)

	mockPosts.On("GetByID", uint(99)).Return(nil, fmt.Errorf("post 99: %w", repositories.ErrNotFound)).Once()

	_, err := service.Add(99, &models.User{ID: 2}, "Hello?")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockComments.AssertNotCalled(t, "Create", mock.Anything)
	mockPosts.AssertExpectations(t)
}
