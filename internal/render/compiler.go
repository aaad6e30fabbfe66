package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Compiler turns LaTeX markup into PDF bytes. The include directory is added
// to the engine's search path so relative assets referenced by the template
// resolve. Implementations must honor ctx cancellation.
type Compiler interface {
	Compile(ctx context.Context, markup string, includeDir string) ([]byte, error)
}

// jobName is the basename given to the LaTeX job inside its scratch dir.
const jobName = "resume"

// PDFLatex compiles markup by shelling out to a pdflatex-compatible binary.
type PDFLatex struct {
	Bin string
}

// NewPDFLatex constructs a PDFLatex compiler. An empty bin defaults to
// "pdflatex" resolved from PATH.
func NewPDFLatex(bin string) *PDFLatex {
	if strings.TrimSpace(bin) == "" {
		bin = "pdflatex"
	}
	return &PDFLatex{Bin: bin}
}

// Compile writes the markup to a scratch directory, runs the engine with
// TEXINPUTS pointing at the template's own directory, and returns the full
// PDF bytes. Engine failures, cancellation, and missing output all surface
// as ErrCompile with the diagnostic attached for server-side logging.
func (p *PDFLatex) Compile(ctx context.Context, markup string, includeDir string) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "latex-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	texPath := filepath.Join(workDir, jobName+".tex")
	if err := os.WriteFile(texPath, []byte(markup), 0o644); err != nil {
		return nil, fmt.Errorf("write markup: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.Bin,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", workDir,
		texPath,
	)
	cmd.Dir = workDir
	// Trailing separator keeps the engine's default search path active.
	cmd.Env = append(os.Environ(), "TEXINPUTS="+includeDir+string(os.PathListSeparator))

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: engine %v", ErrCompile, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s", ErrCompile, diagnosticTail(output.String()))
	}

	pdf, err := os.ReadFile(filepath.Join(workDir, jobName+".pdf"))
	if err != nil {
		return nil, fmt.Errorf("%w: engine produced no output", ErrCompile)
	}
	return pdf, nil
}

// diagnosticTail trims the engine transcript to its last lines; pdflatex logs
// are long and only the tail carries the error.
func diagnosticTail(transcript string) string {
	const maxLines = 20
	lines := strings.Split(strings.TrimSpace(transcript), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}

var _ Compiler = (*PDFLatex)(nil)
