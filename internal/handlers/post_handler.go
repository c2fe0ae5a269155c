package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bloghub/backend/internal/models"
	"github.com/bloghub/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PostService is the interface that wraps methods for post business logic.
type PostService interface {
	// Method Create validates and persists a new post under an existing category.
	Create(ctx context.Context, req *models.PostRequest) (*models.PostDTO, error)
	// Method GetAll retrieves a page of posts with sorting and pagination metadata.
	GetAll(ctx context.Context, pageNo, pageSize int, sortBy, sortDir string) (*models.PostPage, error)
	// Method Get retrieves a post by ID with its comments embedded.
	Get(ctx context.Context, id int) (*models.PostDTO, error)
	// Method GetByCategory retrieves all posts of an existing category.
	GetByCategory(ctx context.Context, categoryID int) ([]models.PostDTO, error)
	// Method Update validates and overwrites a post's fields.
	Update(ctx context.Context, id int, req *models.PostRequest) (*models.PostDTO, error)
	// Method Delete removes a post and its comments.
	Delete(ctx context.Context, id int) error
}

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	BaseHandler
	service PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(service PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers the post routes on a router already scoped to the
// posts subtree; comment routes are registered on the same subtree. Reads
// are open; writes require an authenticated caller.
func (h *PostHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/", h.GetAll)
	r.Get("/{id}", h.Get)
	r.Get("/category/{id}", h.GetByCategory)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /posts
// @Summary Create a post
// @Description Create a new post under an existing category. Requires authentication.
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.PostRequest true "Post payload"
// @Success 201 {object} models.PostDTO "Created post"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create post", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, dto)
}

// GetAll handles GET /posts
// @Summary List posts
// @Description List posts with pagination and sorting. pageNo is zero-based; sortDir other than "asc" sorts descending.
// @Tags posts
// @Produce json
// @Param pageNo query int false "Page number (zero-based), default 0"
// @Param pageSize query int false "Page size, default 10"
// @Param sortBy query string false "Sort field (id, title, description, content, categoryId), default id"
// @Param sortDir query string false "Sort direction (asc/desc), default asc"
// @Success 200 {object} models.PostPage "Page of posts"
// @Failure 400 {object} map[string]string "Invalid sort field or paging parameter"
// @Router /posts [get]
func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	pageNo, ok := h.queryInt(w, r, "pageNo", services.DefaultPageNo)
	if !ok {
		return
	}
	pageSize, ok := h.queryInt(w, r, "pageSize", services.DefaultPageSize)
	if !ok {
		return
	}

	sortBy := r.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = services.DefaultSortBy
	}
	sortDir := r.URL.Query().Get("sortDir")
	if sortDir == "" {
		sortDir = services.DefaultSortDir
	}

	page, err := h.service.GetAll(r.Context(), pageNo, pageSize, sortBy, sortDir)
	if err != nil {
		h.Logger.Error("failed to get posts", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// Get handles GET /posts/{id}
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.PostDTO "Post with its comments"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /posts/{id} [get]
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dto, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, dto)
}

// GetByCategory handles GET /posts/category/{id}
// @Summary List posts of a category
// @Tags posts
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.PostDTO "Posts of the category"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /posts/category/{id} [get]
func (h *PostHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dtos, err := h.service.GetByCategory(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, dtos)
}

// Update handles PUT /posts/{id}
// @Summary Update a post
// @Description Overwrite a post's title, description, content and category. Requires authentication.
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Param request body models.PostRequest true "Post payload"
// @Success 200 {object} models.PostDTO "Updated post"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 404 {object} map[string]string "Post or category not found"
// @Router /posts/{id} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update post", zap.Error(err), zap.Int("id", id))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, dto)
}

// Delete handles DELETE /posts/{id}
// @Summary Delete a post
// @Description Delete a post and its comments. Requires authentication.
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string "Post deleted"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.Logger.Error("failed to delete post", zap.Error(err), zap.Int("id", id))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "post deleted successfully"})
}
