package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bloghub/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CommentService is the interface that wraps methods for comment business logic.
// Every single-comment operation takes the (postID, commentID) pair and
// enforces that the comment belongs to the post.
type CommentService interface {
	// Method Create adds a comment under an existing post.
	Create(ctx context.Context, postID int, req *models.CommentRequest) (*models.CommentDTO, error)
	// Method GetByPost retrieves all comments of an existing post.
	GetByPost(ctx context.Context, postID int) ([]models.CommentDTO, error)
	// Method Get retrieves a comment addressed by (postID, commentID).
	Get(ctx context.Context, postID, commentID int) (*models.CommentDTO, error)
	// Method Update overwrites a comment addressed by (postID, commentID).
	Update(ctx context.Context, postID, commentID int, req *models.CommentRequest) (*models.CommentDTO, error)
	// Method Delete removes a comment addressed by (postID, commentID).
	Delete(ctx context.Context, postID, commentID int) error
}

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	BaseHandler
	service CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers the comment routes on a router already scoped to
// the posts subtree. Reads are open; writes require an authenticated caller.
func (h *CommentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/{postId}/comments", func(r chi.Router) {
		r.Get("/", h.GetByPost)
		r.Get("/{id}", h.Get)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// Create handles POST /posts/{postId}/comments
// @Summary Create a comment
// @Description Create a comment under an existing post. Requires authentication.
// @Tags comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param postId path int true "Post ID"
// @Param request body models.CommentRequest true "Comment payload"
// @Success 201 {object} models.CommentDTO "Created comment"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /posts/{postId}/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.pathID(w, r, "postId")
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.service.Create(r.Context(), postID, &req)
	if err != nil {
		h.Logger.Error("failed to create comment", zap.Error(err), zap.Int("postId", postID))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, dto)
}

// GetByPost handles GET /posts/{postId}/comments
// @Summary List comments of a post
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {array} models.CommentDTO "Comments of the post"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /posts/{postId}/comments [get]
func (h *CommentHandler) GetByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.pathID(w, r, "postId")
	if !ok {
		return
	}

	dtos, err := h.service.GetByPost(r.Context(), postID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, dtos)
}

// Get handles GET /posts/{postId}/comments/{id}
// @Summary Get a comment
// @Description Get a comment by ID under the post it belongs to.
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Param id path int true "Comment ID"
// @Success 200 {object} models.CommentDTO "Comment"
// @Failure 400 {object} map[string]string "Comment does not belong to post"
// @Failure 404 {object} map[string]string "Post or comment not found"
// @Router /posts/{postId}/comments/{id} [get]
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.pathID(w, r, "postId")
	if !ok {
		return
	}
	commentID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dto, err := h.service.Get(r.Context(), postID, commentID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, dto)
}

// Update handles PUT /posts/{postId}/comments/{id}
// @Summary Update a comment
// @Description Overwrite a comment's fields under the post it belongs to. Requires authentication.
// @Tags comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param postId path int true "Post ID"
// @Param id path int true "Comment ID"
// @Param request body models.CommentRequest true "Comment payload"
// @Success 200 {object} models.CommentDTO "Updated comment"
// @Failure 400 {object} map[string]string "Comment does not belong to post"
// @Failure 404 {object} map[string]string "Post or comment not found"
// @Router /posts/{postId}/comments/{id} [put]
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.pathID(w, r, "postId")
	if !ok {
		return
	}
	commentID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.service.Update(r.Context(), postID, commentID, &req)
	if err != nil {
		h.Logger.Error("failed to update comment", zap.Error(err), zap.Int("postId", postID), zap.Int("commentId", commentID))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, dto)
}

// Delete handles DELETE /posts/{postId}/comments/{id}
// @Summary Delete a comment
// @Description Delete a comment under the post it belongs to. Requires authentication.
// @Tags comments
// @Produce json
// @Security ApiKeyAuth
// @Param postId path int true "Post ID"
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string "Comment deleted"
// @Failure 400 {object} map[string]string "Comment does not belong to post"
// @Failure 404 {object} map[string]string "Post or comment not found"
// @Router /posts/{postId}/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.pathID(w, r, "postId")
	if !ok {
		return
	}
	commentID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), postID, commentID); err != nil {
		h.Logger.Error("failed to delete comment", zap.Error(err), zap.Int("postId", postID), zap.Int("commentId", commentID))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "comment deleted successfully"})
}
