package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bloghub/backend/internal/models"
)

// commentRepository implements comment data access
type commentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *sql.DB) *commentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create inserts a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, name, email, body)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, comment.PostID, comment.Name, comment.Email, comment.Body)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	comment.ID = int(id)

	return nil
}

// GetByID retrieves a comment by ID
func (r *commentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	query := `
		SELECT id, post_id, name, email, body
		FROM comments
		WHERE id = ?
	`

	comment := &models.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.Name,
		&comment.Email,
		&comment.Body,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

// GetByPostID retrieves all comments belonging to a post
func (r *commentRepository) GetByPostID(ctx context.Context, postID int) ([]models.Comment, error) {
	query := `
		SELECT id, post_id, name, email, body
		FROM comments
		WHERE post_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments by post: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.Name,
			&comment.Email,
			&comment.Body,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// Update overwrites a comment's fields by ID
func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET name = ?, email = ?, body = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, comment.Name, comment.Email, comment.Body, comment.ID); err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return nil
}

// Delete removes a comment by ID
func (r *commentRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM comments WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
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
