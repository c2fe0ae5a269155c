package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bloghub/backend/internal/apperrors"
	"github.com/bloghub/backend/internal/models"
	"github.com/bloghub/backend/internal/repositories"
)

// CommentRepository is the interface that wraps methods for Comment table data access
type CommentRepository interface {
	// Method Create inserts a new comment; its ID is filled in on success.
	Create(ctx context.Context, comment *models.Comment) error
	// Method GetByID retrieves a comment by ID.
	//
	// If no such comment exists, repositories.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	// Method GetByPostID retrieves all comments belonging to a post.
	GetByPostID(ctx context.Context, postID int) ([]models.Comment, error)
	// Method Update overwrites a comment's fields by ID.
	Update(ctx context.Context, comment *models.Comment) error
	// Method Delete removes a comment by ID.
	Delete(ctx context.Context, id int) error
}

// CommentPostRepository resolves the post a comment is addressed under
type CommentPostRepository interface {
	GetByID(ctx context.Context, id int) (*models.Post, error)
}

// commentService implements comment business logic
type commentService struct {
	commentRepo CommentRepository
	postRepo    CommentPostRepository
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo CommentRepository, postRepo CommentPostRepository) *commentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Create adds a comment under an existing post
func (s *commentService) Create(ctx context.Context, postID int, req *models.CommentRequest) (*models.CommentDTO, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comment := models.CommentFromRequest(*req)
	comment.PostID = postID
	if err := s.commentRepo.Create(ctx, &comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	dto := models.CommentToDTO(comment)
	return &dto, nil
}

// GetByPost retrieves all comments of an existing post
func (s *commentService) GetByPost(ctx context.Context, postID int) ([]models.CommentDTO, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	dtos := make([]models.CommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = models.CommentToDTO(comment)
	}
	return dtos, nil
}

// Get retrieves a comment addressed by (postID, commentID)
func (s *commentService) Get(ctx context.Context, postID, commentID int) (*models.CommentDTO, error) {
	comment, err := s.getOwnedComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	dto := models.CommentToDTO(*comment)
	return &dto, nil
}

// Update overwrites the fields of a comment addressed by (postID, commentID)
func (s *commentService) Update(ctx context.Context, postID, commentID int, req *models.CommentRequest) (*models.CommentDTO, error) {
	comment, err := s.getOwnedComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Name = req.Name
	comment.Email = req.Email
	comment.Body = req.Body
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	dto := models.CommentToDTO(*comment)
	return &dto, nil
}

// Delete removes a comment addressed by (postID, commentID)
func (s *commentService) Delete(ctx context.Context, postID, commentID int) error {
	comment, err := s.getOwnedComment(ctx, postID, commentID)
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFound("Comment", commentID)
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// getOwnedComment resolves the (postID, commentID) pair and enforces the
// ownership invariant: the comment's post reference must equal the post it
// was addressed under. The check runs on every read and mutation rather
// than being assumed from storage locality.
func (s *commentService) getOwnedComment(ctx context.Context, postID, commentID int) (*models.Comment, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewNotFound("Comment", commentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if comment.PostID != post.ID {
		return nil, apperrors.ErrCommentNotOwned
	}

	return comment, nil
}

func (s *commentService) getPost(ctx context.Context, id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewNotFound("Post", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}
