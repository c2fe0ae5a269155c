package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bloghub/backend/internal/apperrors"
	"github.com/bloghub/backend/internal/models"
	"github.com/bloghub/backend/internal/repositories"
)

// Pagination defaults applied when the caller omits the query parameters
const (
	DefaultPageNo   = 0
	DefaultPageSize = 10
	DefaultSortBy   = "id"
	DefaultSortDir  = "asc"
)

// postSortColumns resolves exposed sort field names to table columns.
// Anything outside this list is rejected, which also keeps the
// interpolated ORDER BY clause safe.
var postSortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"content":     "content",
	"categoryId":  "category_id",
}

// PostRepository is the interface that wraps methods for Post table data access
type PostRepository interface {
	// Method Create inserts a new post; its ID is filled in on success.
	Create(ctx context.Context, post *models.Post) error
	// Method GetByID retrieves a post by ID.
	//
	// If no such post exists, repositories.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Post, error)
	// Method GetPage retrieves one page of posts ordered by the given column.
	GetPage(ctx context.Context, limit, offset int, orderColumn string, ascending bool) ([]models.Post, error)
	// Method Count returns the total number of posts.
	Count(ctx context.Context) (int64, error)
	// Method GetByCategoryID retrieves all posts belonging to a category.
	GetByCategoryID(ctx context.Context, categoryID int) ([]models.Post, error)
	// Method Update overwrites a post's fields by ID.
	Update(ctx context.Context, post *models.Post) error
	// Method Delete removes a post by ID along with its comments.
	Delete(ctx context.Context, id int) error
}

// PostCategoryRepository resolves the category a post belongs to
type PostCategoryRepository interface {
	GetByID(ctx context.Context, id int) (*models.Category, error)
}

// PostCommentsRepository loads the comments embedded in a post DTO
type PostCommentsRepository interface {
	GetByPostID(ctx context.Context, postID int) ([]models.Comment, error)
}

// postService implements post business logic
type postService struct {
	postRepo     PostRepository
	categoryRepo PostCategoryRepository
	commentRepo  PostCommentsRepository
}

// NewPostService creates a new post service
func NewPostService(postRepo PostRepository, categoryRepo PostCategoryRepository, commentRepo PostCommentsRepository) *postService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
	}
}

// Create validates and persists a new post under an existing category
func (s *postService) Create(ctx context.Context, req *models.PostRequest) (*models.PostDTO, error) {
	if err := validatePostRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.getCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	post := models.PostFromRequest(*req)
	if err := s.postRepo.Create(ctx, &post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	dto := models.PostToDTO(post, nil)
	return &dto, nil
}

// GetAll retrieves a page of posts with sorting and pagination metadata.
// pageNo is zero-based; a page past the end yields empty content with
// last=true rather than an error.
func (s *postService) GetAll(ctx context.Context, pageNo, pageSize int, sortBy, sortDir string) (*models.PostPage, error) {
	if pageNo < 0 {
		pageNo = DefaultPageNo
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	orderColumn, ok := postSortColumns[sortBy]
	if !ok {
		return nil, &apperrors.InvalidSortFieldError{Field: sortBy}
	}
	// Only an explicit "asc" (any case) sorts ascending
	ascending := strings.EqualFold(sortDir, "asc")

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	posts, err := s.postRepo.GetPage(ctx, pageSize, pageNo*pageSize, orderColumn, ascending)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	content := make([]models.PostDTO, len(posts))
	for i, post := range posts {
		content[i] = models.PostToDTO(post, nil)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PostPage{
		Content:       content,
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          pageNo >= totalPages-1,
	}, nil
}

// Get retrieves a post by ID with its comments embedded
func (s *postService) Get(ctx context.Context, id int) (*models.PostDTO, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByPostID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post comments: %w", err)
	}

	dto := models.PostToDTO(*post, comments)
	return &dto, nil
}

// GetByCategory retrieves all posts of an existing category
func (s *postService) GetByCategory(ctx context.Context, categoryID int) ([]models.PostDTO, error) {
	if _, err := s.getCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts by category: %w", err)
	}

	dtos := make([]models.PostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = models.PostToDTO(post, nil)
	}
	return dtos, nil
}

// Update validates and overwrites a post's fields, re-resolving its
// category. The same content rules apply as on create.
func (s *postService) Update(ctx context.Context, id int, req *models.PostRequest) (*models.PostDTO, error) {
	if err := validatePostRequest(req); err != nil {
		return nil, err
	}

	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.getCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Description = req.Description
	post.Content = req.Content
	post.CategoryID = req.CategoryID

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	comments, err := s.commentRepo.GetByPostID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post comments: %w", err)
	}

	dto := models.PostToDTO(*post, comments)
	return &dto, nil
}

// Delete removes a post by ID; its comments are removed with it
func (s *postService) Delete(ctx context.Context, id int) error {
	if _, err := s.getPost(ctx, id); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFound("Post", id)
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (s *postService) getPost(ctx context.Context, id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewNotFound("Post", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (s *postService) getCategory(ctx context.Context, id int) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewNotFound("Category", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// validatePostRequest enforces the post content rules shared by create and
// update: title non-empty with at least 2 characters, description non-empty
// with at least 10 characters, content non-empty.
func validatePostRequest(req *models.PostRequest) error {
	if req.Title == "" {
		return &apperrors.ValidationError{Field: "title", Rule: "must not be empty"}
	}
	if utf8.RuneCountInString(req.Title) < 2 {
		return &apperrors.ValidationError{Field: "title", Rule: "should have at least 2 characters"}
	}
	if req.Description == "" {
		return &apperrors.ValidationError{Field: "description", Rule: "must not be empty"}
	}
	if utf8.RuneCountInString(req.Description) < 10 {
		return &apperrors.ValidationError{Field: "description", Rule: "should have at least 10 characters"}
	}
	if req.Content == "" {
		return &apperrors.ValidationError{Field: "content", Rule: "must not be empty"}
	}
	return nil
}
