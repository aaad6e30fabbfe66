package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/renders"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/templates"
)

// OutputFileName is the fixed artifact name under the output directory.
// Every render overwrites it; concurrent renders race and the last write
// wins. The served URL path is "/" + OutputFileName.
const OutputFileName = "generated_resume.pdf"

// Result is the successful outcome of a render.
type Result struct {
	RenderID string
	PDFPath  string
	Pages    int
}

// Service drives the render pipeline: validate, resolve, substitute, compile,
// persist. It holds no per-request state.
type Service struct {
	Resolver *templates.Resolver
	Compiler Compiler
	Renders  renders.Repo
	OutDir   string
	Timeout  time.Duration
}

// Render executes one render request end to end. No stage retries; every
// failure is classified and surfaced synchronously.
func (s *Service) Render(ctx context.Context, userID string, req RenderRequest) (Result, error) {
	metrics.IncRenderStarted()
	start := time.Now()

	result, err := s.render(ctx, req)
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveRenderDurationMs(durationMs)

	rec := renders.Render{
		ID:           uuid.NewString(),
		UserID:       userID,
		TemplateName: req.TemplateName,
		DurationMs:   durationMs,
		CreatedAt:    time.Now().UTC(),
	}
	if err != nil {
		metrics.IncRenderFailed()
		rec.Status = renders.StatusFailed
		rec.Error = err.Error()
	} else {
		metrics.IncRenderCompleted()
		rec.Status = renders.StatusCompleted
		rec.OutputPath = result.PDFPath
		rec.Pages = result.Pages
		result.RenderID = rec.ID
	}

	// History is best-effort; a ledger write failure must not fail a render
	// whose artifact is already on disk.
	if s.Renders != nil {
		if recErr := s.Renders.Create(ctx, rec); recErr != nil {
			telemetry.Error("render.record", map[string]any{
				"render_id": rec.ID,
				"error":     recErr.Error(),
			})
		}
	}

	if err != nil {
		return Result{}, err
	}

	telemetry.Info("render.complete", map[string]any{
		"render_id":     rec.ID,
		"template_name": req.TemplateName,
		"pages":         result.Pages,
		"duration_ms":   durationMs,
	})
	return result, nil
}

func (s *Service) render(ctx context.Context, req RenderRequest) (Result, error) {
	if err := req.ResumeData.Validate(); err != nil {
		return Result{}, err
	}

	handle, err := s.Resolver.Resolve(req.TemplateName)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidName) {
			return Result{}, templates.ErrNotFound
		}
		return Result{}, err
	}

	markup := Substitute(handle.Source, req.ResumeData)

	compileCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		compileCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	pdf, err := s.Compiler.Compile(compileCtx, markup, handle.Dir)
	if err != nil {
		telemetry.Error("render.compile", map[string]any{
			"template_name": req.TemplateName,
			"error":         err.Error(),
		})
		if errors.Is(err, ErrCompile) {
			return Result{}, ErrCompile
		}
		return Result{}, fmt.Errorf("%w: %v", ErrCompile, err)
	}

	pages := 0
	if n, err := PageCount(pdf); err == nil {
		pages = n
	}

	if err := os.MkdirAll(s.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	outPath := filepath.Join(s.OutDir, OutputFileName)
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	return Result{PDFPath: "/" + OutputFileName, Pages: pages}, nil
}
