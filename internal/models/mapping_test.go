package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every conversion is asserted field by field so a mapping that drops or
// swaps a field fails here even when no caller happens to read it.

func TestCategoryToDTO(t *testing.T) {
	category := Category{ID: 3, Name: "Go", Description: "Go articles"}

	dto := CategoryToDTO(category)

	assert.Equal(t, 3, dto.ID)
	assert.Equal(t, "Go", dto.Name)
	assert.Equal(t, "Go articles", dto.Description)
}

func TestCategoryFromRequest(t *testing.T) {
	req := CategoryRequest{Name: "Go", Description: "Go articles"}

	category := CategoryFromRequest(req)

	assert.Zero(t, category.ID)
	assert.Equal(t, "Go", category.Name)
	assert.Equal(t, "Go articles", category.Description)
}

func TestPostToDTO(t *testing.T) {
	post := Post{
		ID:          7,
		Title:       "First post",
		Description: "A description long enough",
		Content:     "Body text",
		CategoryID:  2,
	}

	t.Run("without comments", func(t *testing.T) {
		dto := PostToDTO(post, nil)

		assert.Equal(t, 7, dto.ID)
		assert.Equal(t, "First post", dto.Title)
		assert.Equal(t, "A description long enough", dto.Description)
		assert.Equal(t, "Body text", dto.Content)
		assert.Equal(t, 2, dto.CategoryID)
		assert.NotNil(t, dto.Comments)
		assert.Empty(t, dto.Comments)
	})

	t.Run("with comments", func(t *testing.T) {
		comments := []Comment{
			{ID: 10, PostID: 7, Name: "Jane", Email: "jane@example.com", Body: "Nice post"},
			{ID: 11, PostID: 7, Name: "Bob", Email: "bob@example.com", Body: "Agreed"},
		}

		dto := PostToDTO(post, comments)

		require.Len(t, dto.Comments, 2)
		assert.Equal(t, 10, dto.Comments[0].ID)
		assert.Equal(t, "Jane", dto.Comments[0].Name)
		assert.Equal(t, "jane@example.com", dto.Comments[0].Email)
		assert.Equal(t, "Nice post", dto.Comments[0].Body)
		assert.Equal(t, 11, dto.Comments[1].ID)
		assert.Equal(t, "Bob", dto.Comments[1].Name)
	})
}

func TestPostFromRequest(t *testing.T) {
	req := PostRequest{
		Title:       "First post",
		Description: "A description long enough",
		Content:     "Body text",
		CategoryID:  2,
	}

	post := PostFromRequest(req)

	assert.Zero(t, post.ID)
	assert.Equal(t, "First post", post.Title)
	assert.Equal(t, "A description long enough", post.Description)
	assert.Equal(t, "Body text", post.Content)
	assert.Equal(t, 2, post.CategoryID)
}

func TestCommentToDTO(t *testing.T) {
	comment := Comment{ID: 10, PostID: 7, Name: "Jane", Email: "jane@example.com", Body: "Nice post"}

	dto := CommentToDTO(comment)

	assert.Equal(t, 10, dto.ID)
	assert.Equal(t, "Jane", dto.Name)
	assert.Equal(t, "jane@example.com", dto.Email)
	assert.Equal(t, "Nice post", dto.Body)
}

func TestCommentFromRequest(t *testing.T) {
	req := CommentRequest{Name: "Jane", Email: "jane@example.com", Body: "Nice post"}

	comment := CommentFromRequest(req)

	assert.Zero(t, comment.ID)
	assert.Zero(t, comment.PostID)
	assert.Equal(t, "Jane", comment.Name)
	assert.Equal(t, "jane@example.com", comment.Email)
	assert.Equal(t, "Nice post", comment.Body)
}
