package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bloghub/backend/internal/apperrors"
	"github.com/bloghub/backend/internal/models"
	"github.com/bloghub/backend/internal/repositories"
)

// CategoryRepository is the interface that wraps methods for Category table data access
type CategoryRepository interface {
	// Method Create inserts a new category; its ID is filled in on success.
	Create(ctx context.Context, category *models.Category) error
	// Method GetByID retrieves a category by ID.
	//
	// If no such category exists, repositories.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Category, error)
	// Method GetAll retrieves all categories.
	GetAll(ctx context.Context) ([]models.Category, error)
	// Method Update overwrites a category's fields by ID.
	Update(ctx context.Context, category *models.Category) error
	// Method Delete removes a category by ID.
	Delete(ctx context.Context, id int) error
}

// CategoryPostsRepository checks for posts still referencing a category
type CategoryPostsRepository interface {
	ExistsByCategoryID(ctx context.Context, categoryID int) (bool, error)
}

// categoryService implements category business logic
type categoryService struct {
	categoryRepo CategoryRepository
	postRepo     CategoryPostsRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo CategoryRepository, postRepo CategoryPostsRepository) *categoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
	}
}

// Create adds a new category
func (s *categoryService) Create(ctx context.Context, req *models.CategoryRequest) (*models.CategoryDTO, error) {
	category := models.CategoryFromRequest(*req)
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	dto := models.CategoryToDTO(category)
	return &dto, nil
}

// Get retrieves a category by ID
func (s *categoryService) Get(ctx context.Context, id int) (*models.CategoryDTO, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := models.CategoryToDTO(*category)
	return &dto, nil
}

// GetAll retrieves all categories
func (s *categoryService) GetAll(ctx context.Context) ([]models.CategoryDTO, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	dtos := make([]models.CategoryDTO, len(categories))
	for i, category := range categories {
		dtos[i] = models.CategoryToDTO(category)
	}
	return dtos, nil
}

// Update overwrites the category's name and description
func (s *categoryService) Update(ctx context.Context, id int, req *models.CategoryRequest) (*models.CategoryDTO, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	dto := models.CategoryToDTO(*category)
	return &dto, nil
}

// Delete removes a category. Deletion is blocked while posts still
// reference the category, so no post is ever left dangling.
func (s *categoryService) Delete(ctx context.Context, id int) error {
	if _, err := s.getCategory(ctx, id); err != nil {
		return err
	}

	hasPosts, err := s.postRepo.ExistsByCategoryID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check category posts: %w", err)
	}
	if hasPosts {
		return &apperrors.CategoryNotEmptyError{ID: id}
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFound("Category", id)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (s *categoryService) getCategory(ctx context.Context, id int) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewNotFound("Category", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}
