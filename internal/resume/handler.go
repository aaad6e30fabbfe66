package resume

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/render"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires resume content routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume content routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume-data", h.get)
	rg.PUT("/resume-data", h.update)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	data, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		respond.Fail(c, http.StatusInternalServerError, "Failed to fetch resume data")
		return
	}
	respond.OK(c, data)
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var data render.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := h.Svc.Update(c.Request.Context(), userID, data); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Fail(c, http.StatusBadRequest, "Invalid input")
			return
		}
		respond.Fail(c, http.StatusInternalServerError, "Failed to save resume data")
		return
	}
	respond.OK(c, gin.H{"success": true})
}
