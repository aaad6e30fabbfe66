// Package bootstrap wires configuration into repositories, services,
// handlers and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-builder/internal/render"
	"resume-builder/internal/renders"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/templates"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	TemplateRegistry *templates.Registry
	TemplateResolver *templates.Resolver
	TemplatesRepo    templates.Repo
	ResumeRepo       resume.Repo
	RendersRepo      renders.Repo
	Compiler         render.Compiler
	RenderService    *render.Service
	TemplateService  *templates.Service
	ResumeService    *resume.Service

	watchCancel context.CancelFunc
}

// Option overrides a dependency, mainly for tests.
type Option func(*App)

// WithCompiler substitutes the LaTeX compiler, so tests can run the pipeline
// without a TeX installation.
func WithCompiler(c render.Compiler) Option {
	return func(a *App) {
		a.Compiler = c
	}
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	if err := os.MkdirAll(cfg.TemplatesDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	registry, err := templates.NewRegistry(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	watchCtx, watchCancel := context.WithCancel(context.Background())
	if err := registry.Watch(watchCtx); err != nil {
		log.Printf("bootstrap: template watch unavailable: %v", err)
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		TemplateRegistry: registry,
		TemplateResolver: templates.NewResolver(cfg.TemplatesDir),
		Compiler:         render.NewPDFLatex(cfg.LatexBin),
		watchCancel:      watchCancel,
	}

	if sqlDB != nil {
		app.TemplatesRepo = &templates.PGRepo{DB: sqlDB}
		app.ResumeRepo = &resume.PGRepo{DB: sqlDB}
		app.RendersRepo = &renders.PGRepo{DB: sqlDB}
	} else {
		app.TemplatesRepo = seedTemplatesRepo(registry)
		app.ResumeRepo = resume.NewMemoryRepo()
		app.RendersRepo = renders.NewMemoryRepo()
	}

	for _, opt := range opts {
		opt(app)
	}

	app.RenderService = &render.Service{
		Resolver: app.TemplateResolver,
		Compiler: app.Compiler,
		Renders:  app.RendersRepo,
		OutDir:   cfg.OutputDir,
		Timeout:  cfg.LatexTimeout,
	}
	app.TemplateService = &templates.Service{Repo: app.TemplatesRepo, Registry: registry}
	app.ResumeService = &resume.Service{Repo: app.ResumeRepo}

	app.Router = server.NewRouter(cfg, server.Deps{
		RenderHandler:   render.NewHandler(app.RenderService),
		TemplateHandler: templates.NewHandler(app.TemplateService),
		ResumeHandler:   resume.NewHandler(app.ResumeService),
		RendersHandler:  renders.NewHandler(app.RendersRepo),
		OutputDir:       cfg.OutputDir,
	})

	return app, nil
}

// Close releases background watchers and the database pool.
func (a *App) Close() {
	if a.watchCancel != nil {
		a.watchCancel()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

// seedTemplatesRepo registers the templates found on disk so the list and
// update endpoints work without a database.
func seedTemplatesRepo(registry *templates.Registry) *templates.MemoryRepo {
	repo := templates.NewMemoryRepo()
	for _, name := range registry.List() {
		repo.Seed(templates.Template{
			ID:   uuid.NewString(),
			Name: name,
			Slug: name,
		})
	}
	return repo
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
