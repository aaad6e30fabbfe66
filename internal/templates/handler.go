package templates

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.POST("/templates/update", h.update)
}

// TemplateResponse is the outward-facing representation of a template record.
type TemplateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (h *Handler) list(c *gin.Context) {
	listed, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Fail(c, http.StatusInternalServerError, "Failed to list templates")
		return
	}

	out := make([]TemplateResponse, 0, len(listed))
	for _, tpl := range listed {
		out = append(out, TemplateResponse{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Slug:        tpl.Slug,
			Description: tpl.Description,
			Available:   tpl.Available,
			UpdatedAt:   tpl.UpdatedAt,
		})
	}
	respond.OK(c, out)
}

type updateRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	tpl, err := h.Svc.Update(c.Request.Context(), req.ID, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Fail(c, http.StatusBadRequest, "Invalid input")
		case errors.Is(err, ErrNotFound):
			respond.Fail(c, http.StatusNotFound, "Template not found")
		default:
			respond.Fail(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"updatedTemplate": TemplateResponse{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Slug:        tpl.Slug,
			Description: tpl.Description,
			Available:   h.Svc.Registry != nil && h.Svc.Registry.Has(tpl.Slug),
			UpdatedAt:   tpl.UpdatedAt,
		},
	})
}
