package renders

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler exposes the render history.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches render-history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/renders", h.list)
}

// RenderResponse is the outward-facing representation of a render record.
type RenderResponse struct {
	RenderID     string    `json:"renderId"`
	TemplateName string    `json:"templateName"`
	Status       string    `json:"status"`
	OutputPath   string    `json:"outputPath,omitempty"`
	Pages        int       `json:"pages,omitempty"`
	DurationMs   float64   `json:"durationMs"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	records, err := h.Repo.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Fail(c, http.StatusInternalServerError, "Failed to list renders")
		return
	}

	out := make([]RenderResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, RenderResponse{
			RenderID:     rec.ID,
			TemplateName: rec.TemplateName,
			Status:       rec.Status,
			OutputPath:   rec.OutputPath,
			Pages:        rec.Pages,
			DurationMs:   rec.DurationMs,
			Error:        rec.Error,
			CreatedAt:    rec.CreatedAt,
		})
	}
	respond.OK(c, out)
}
