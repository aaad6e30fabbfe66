package main

// One-shot render without the HTTP server:
//   go run ./cmd/render -data resume.json -template classic

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"resume-builder/internal/render"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/templates"
)

func main() {
	dataPath := flag.String("data", "resume.json", "path to a JSON file holding resume data")
	templateName := flag.String("template", "", "template name under the templates root")
	flag.Parse()

	if *templateName == "" {
		log.Fatalf("-template is required")
	}

	cfg := config.Load()

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("read data: %v", err)
	}
	var data render.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("parse data: %v", err)
	}

	svc := &render.Service{
		Resolver: templates.NewResolver(cfg.TemplatesDir),
		Compiler: render.NewPDFLatex(cfg.LatexBin),
		OutDir:   cfg.OutputDir,
		Timeout:  cfg.LatexTimeout,
	}

	result, err := svc.Render(context.Background(), "cli", render.RenderRequest{
		ResumeData:   data,
		TemplateName: *templateName,
	})
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	fmt.Printf("wrote %s (%d pages)\n", cfg.OutputDir+result.PDFPath, result.Pages)
}
