package models

// Post represents a blog post belonging to exactly one category
type Post struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	CategoryID  int    `json:"categoryId"`
}

// PostRequest represents a post create/update payload
type PostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	CategoryID  int    `json:"categoryId"`
}

// PostDTO is the transfer form of a post, including its comments
type PostDTO struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	CategoryID  int          `json:"categoryId"`
	Comments    []CommentDTO `json:"comments"`
}

// PostPage is the paginated listing result for posts
type PostPage struct {
	Content       []PostDTO `json:"content"`
	PageNo        int       `json:"pageNo"`
	PageSize      int       `json:"pageSize"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Last          bool      `json:"last"`
}
