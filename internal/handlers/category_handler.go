package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bloghub/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CategoryService is the interface that wraps methods for category business logic.
type CategoryService interface {
	// Method Create adds a new category.
	Create(ctx context.Context, req *models.CategoryRequest) (*models.CategoryDTO, error)
	// Method Get retrieves a category by ID.
	Get(ctx context.Context, id int) (*models.CategoryDTO, error)
	// Method GetAll retrieves all categories.
	GetAll(ctx context.Context) ([]models.CategoryDTO, error)
	// Method Update overwrites a category's name and description.
	Update(ctx context.Context, id int, req *models.CategoryRequest) (*models.CategoryDTO, error)
	// Method Delete removes a category without posts referencing it.
	Delete(ctx context.Context, id int) error
}

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	BaseHandler
	service CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all category handler routes. Reads are open;
// writes require the admin authority.
func (h *CategoryHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.Get)
		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// Create handles POST /categories
// @Summary Create a category
// @Description Create a new category. Requires the ROLE_ADMIN authority.
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CategoryRequest true "Category payload"
// @Success 201 {object} models.CategoryDTO "Created category"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create category", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, dto)
}

// Get handles GET /categories/{id}
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.CategoryDTO "Category"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// GetAll handles GET /categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDTO "Categories"
// @Router /categories [get]
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get categories", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, dtos)
}

// Update handles PUT /categories/{id}
// @Summary Update a category
// @Description Overwrite a category's name and description. Requires the ROLE_ADMIN authority.
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category ID"
// @Param request body models.CategoryRequest true "Category payload"
// @Success 200 {object} models.CategoryDTO "Updated category"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update category", zap.Error(err), zap.Int("id", id))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, dto)
}

// Delete handles DELETE /categories/{id}
// @Summary Delete a category
// @Description Delete a category with no posts left in it. Requires the ROLE_ADMIN authority.
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string "Category deleted"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Category still has posts"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.Logger.Error("failed to delete category", zap.Error(err), zap.Int("id", id))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "category deleted successfully"})
}
