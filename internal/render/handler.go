package render

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/templates"
)

const maxBodySize = 1 << 20 // 1MB

// Handler wires the render endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches render routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume", h.render)
}

// renderResponse is the frozen success shape of the render endpoint.
type renderResponse struct {
	Success bool   `json:"success"`
	PDFPath string `json:"pdfPath"`
}

func (h *Handler) render(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	var req RenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	c.Set("templateName", req.TemplateName)

	if err := ValidateRequestBody(body); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Svc.Render(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrNotFound):
			respond.Fail(c, http.StatusNotFound, "Template not found")
		case errors.Is(err, ErrInvalidInput):
			respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		case errors.Is(err, ErrCompile):
			// The engine transcript stays server-side; callers get the
			// generic classification only.
			respond.Fail(c, http.StatusInternalServerError, "LaTeX compilation failed")
		default:
			respond.Fail(c, http.StatusInternalServerError, "Failed to generate resume")
		}
		return
	}

	c.Set("renderId", result.RenderID)
	respond.OK(c, renderResponse{Success: true, PDFPath: result.PDFPath})
}
