package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/render"
	"resume-builder/internal/renders"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/templates"
)

// Deps carries the handlers wired into the router.
type Deps struct {
	RenderHandler   *render.Handler
	TemplateHandler *templates.Handler
	ResumeHandler   *resume.Handler
	RendersHandler  *renders.Handler
	OutputDir       string
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.RenderHandler.RegisterRoutes(api)
	deps.TemplateHandler.RegisterRoutes(api)
	deps.ResumeHandler.RegisterRoutes(api)
	deps.RendersHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	// The generated artifact is served at its root-relative path, matching
	// the pdfPath returned by the render endpoint.
	r.StaticFile("/"+render.OutputFileName, filepath.Join(deps.OutputDir, render.OutputFileName))

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
