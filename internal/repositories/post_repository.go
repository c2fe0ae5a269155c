package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bloghub/backend/internal/models"
)

// postRepository implements post data access
type postRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sql.DB) *postRepository {
	return &postRepository{
		db: db,
	}
}

// Create inserts a new post
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (title, description, content, category_id)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, post.Title, post.Description, post.Content, post.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	post.ID = int(id)

	return nil
}

// GetByID retrieves a post by ID
func (r *postRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	query := `
		SELECT id, title, description, content, category_id
		FROM posts
		WHERE id = ?
	`

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.Content,
		&post.CategoryID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// GetPage retrieves one page of posts ordered by the given column.
// The column name must come from the service's sort whitelist; it is
// interpolated, not bound, because MySQL cannot parameterize ORDER BY.
func (r *postRepository) GetPage(ctx context.Context, limit, offset int, orderColumn string, ascending bool) ([]models.Post, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, content, category_id
		FROM posts
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, orderColumn, direction)

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// Count returns the total number of posts
func (r *postRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM posts`

	var total int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return total, nil
}

// GetByCategoryID retrieves all posts belonging to a category
func (r *postRepository) GetByCategoryID(ctx context.Context, categoryID int) ([]models.Post, error) {
	query := `
		SELECT id, title, description, content, category_id
		FROM posts
		WHERE category_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by category: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ExistsByCategoryID checks whether any post references the category
func (r *postRepository) ExistsByCategoryID(ctx context.Context, categoryID int) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM posts WHERE category_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check posts by category: %w", err)
	}

	return exists, nil
}

// Update overwrites a post's fields by ID
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = ?, description = ?, content = ?, category_id = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, post.Title, post.Description, post.Content, post.CategoryID, post.ID); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// Delete removes a post by ID. Comments go with it through the
// ON DELETE CASCADE foreign key.
func (r *postRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM posts WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// scanPosts collects post rows
func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	var posts []models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Description,
			&post.Content,
			&post.CategoryID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}
