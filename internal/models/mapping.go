package models

// Entity to transfer-object conversions. Field lists are spelled out on
// purpose: a silently dropped or added field should show up in a diff, not
// hide behind reflection.

// CategoryToDTO converts a category entity to its transfer form
func CategoryToDTO(category Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

// CategoryFromRequest builds a category entity from a request payload
func CategoryFromRequest(req CategoryRequest) Category {
	return Category{
		Name:        req.Name,
		Description: req.Description,
	}
}

// PostToDTO converts a post entity and its comments to the transfer form
func PostToDTO(post Post, comments []Comment) PostDTO {
	dto := PostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		CategoryID:  post.CategoryID,
		Comments:    make([]CommentDTO, len(comments)),
	}
	for i, comment := range comments {
		dto.Comments[i] = CommentToDTO(comment)
	}
	return dto
}

// PostFromRequest builds a post entity from a request payload
func PostFromRequest(req PostRequest) Post {
	return Post{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		CategoryID:  req.CategoryID,
	}
}

// CommentToDTO converts a comment entity to its transfer form
func CommentToDTO(comment Comment) CommentDTO {
	return CommentDTO{
		ID:    comment.ID,
		Name:  comment.Name,
		Email: comment.Email,
		Body:  comment.Body,
	}
}

// CommentFromRequest builds a comment entity from a request payload
func CommentFromRequest(req CommentRequest) Comment {
	return Comment{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Body,
	}
}
