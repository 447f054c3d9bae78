package cvstore

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches CV store routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/cv", h.current)
	rg.POST("/cv", h.create)
	rg.PUT("/cv", h.update)
}

func (h *Handler) current(c *gin.Context) {
	cv, err := h.Svc.Current(c.Request.Context(), c.Query("userId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "User ID is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "CV not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to fetch CV", err)
		}
		return
	}
	respond.OK(c, "", cv)
}

func (h *Handler) create(c *gin.Context) {
	var body CV
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to create CV", fmt.Errorf("decode body: %w", err))
		return
	}

	cv, err := h.Svc.Create(c.Request.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Personal information is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to create CV", err)
		}
		return
	}
	respond.Created(c, "CV created successfully", cv)
}

func (h *Handler) update(c *gin.Context) {
	var body CV
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to update CV", fmt.Errorf("decode body: %w", err))
		return
	}

	cv, err := h.Svc.Update(c.Request.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "CV ID is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "CV not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to update CV", err)
		}
		return
	}
	respond.OK(c, "CV updated successfully", cv)
}
