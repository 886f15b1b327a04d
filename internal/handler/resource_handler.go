package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/exemplo/crudmongo-api/pkg/errors"
	"github.com/exemplo/crudmongo-api/pkg/response"
)

type resourceService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id string, patch *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler exposes one entity collection over HTTP.
type ResourceHandler[T any] struct {
	service resourceService[T]
}

// NewResourceHandler constructs a resource handler.
func NewResourceHandler[T any](svc resourceService[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: svc}
}

// Register mounts the five collection routes on rg.
func (h *ResourceHandler[T]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List every document of the collection
// @Produce json
// @Success 200 {array} object
// @Router /{resource} [get]
func (h *ResourceHandler[T]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get a document by id
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} object
// @Failure 404
// @Router /{resource}/{id} [get]
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	entity, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entity)
}

// Create godoc
// @Summary Create a document; the id is assigned by the store
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Router /{resource} [post]
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entity, err := h.service.Create(c.Request.Context(), &payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entity)
}

// Update godoc
// @Summary Replace every field of a document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} object
// @Failure 404
// @Router /{resource}/{id} [put]
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entity, err := h.service.Update(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entity)
}

// Delete godoc
// @Summary Delete a document
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404
// @Router /{resource}/{id} [delete]
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
