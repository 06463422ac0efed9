package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/pkg/infrastructure"
)

// Converter prints a self-contained HTML document to PDF.
type Converter interface {
	ToPDF(ctx context.Context, html string) ([]byte, error)
}

// TemplateCatalog lists templates and exposes the assets they reference.
type TemplateCatalog interface {
	List() []domain.TemplateDescriptor
	Assets() fs.FS
}

// Processor runs the rendering pipeline and fronts the enrichment gateway.
type Processor struct {
	catalog   TemplateCatalog
	renderer  *render.Renderer
	converter Converter
	gateway   *Gateway
}

func NewProcessor(c TemplateCatalog, r *render.Renderer, conv Converter, g *Gateway) *Processor {
	return &Processor{catalog: c, renderer: r, converter: conv, gateway: g}
}

func (p *Processor) ListTemplates() []domain.TemplateDescriptor {
	return p.catalog.List()
}

// RenderHTML binds data, expands the template and inlines its local assets.
func (p *Processor) RenderHTML(data model.ResumeData, templateID string) (string, error) {
	html, err := p.renderer.Render(templateID, render.Bind(data))
	if err != nil {
		return "", err
	}
	doc, err := infrastructure.SelfContained(html, p.catalog.Assets())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrTemplateProcessing, templateID, err)
	}
	return doc, nil
}

// Preview renders templateID with the built-in sample resume.
func (p *Processor) Preview(templateID string) (string, error) {
	return p.RenderHTML(model.SampleResume(), templateID)
}

// RenderResume produces the PDF for data in the given template. Each stage
// must succeed; there is no substitute output.
func (p *Processor) RenderResume(ctx context.Context, data model.ResumeData, templateID string) ([]byte, error) {
	logger := slog.With("component", "processor", "template", templateID)
	started := time.Now()

	doc, err := p.RenderHTML(data, templateID)
	if err != nil {
		logger.ErrorContext(ctx, "template render failed", "error", err)
		return nil, err
	}

	pdf, err := p.converter.ToPDF(ctx, doc)
	if err != nil {
		if !errors.Is(err, domain.ErrConversion) {
			err = fmt.Errorf("%w: %w", domain.ErrConversion, err)
		}
		logger.ErrorContext(ctx, "pdf conversion failed", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "resume rendered", "bytes", len(pdf), "elapsed", time.Since(started))
	return pdf, nil
}

func (p *Processor) Extract(ctx context.Context, file io.Reader, filename, contentType string) Outcome[model.ResumeData] {
	out := p.gateway.Extract(ctx, file, filename, contentType)
	out.Value = out.Value.Clean()
	return out
}

func (p *Processor) Enhance(ctx context.Context, data model.ResumeData) Outcome[model.EnhancedResume] {
	return p.gateway.Enhance(ctx, data.Clean())
}

// Score rates data against jobDescription, or against the resume's own job
// description when none is given.
func (p *Processor) Score(ctx context.Context, data model.ResumeData, jobDescription string) Outcome[domain.AtsScore] {
	if strings.TrimSpace(jobDescription) == "" {
		jobDescription = data.JobDescription
	}
	return p.gateway.Score(ctx, data.Clean(), jobDescription)
}

func (p *Processor) Feedback(ctx context.Context, data model.ResumeData) (domain.Feedback, error) {
	fb, err := p.gateway.Feedback(ctx, data.Clean())
	if err != nil {
		slog.ErrorContext(ctx, "feedback failed", "component", "processor", "error", err)
		return domain.Feedback{}, err
	}
	return fb, nil
}

var (
	// \s in RE2 omits the vertical tab, so it is listed explicitly.
	filenameStrip = regexp.MustCompile(`[^A-Za-z0-9\s\v]`)
	filenameSpace = regexp.MustCompile(`[\s\v]+`)
)

// GenerateFilename derives the download name from a person's name:
// "Jöhn  O'Doe!!" becomes "Jhn_ODoe_Resume.pdf". Leading or trailing
// whitespace collapses to an underscore like any other run.
func GenerateFilename(fullName string) string {
	name := filenameStrip.ReplaceAllString(fullName, "")
	return filenameSpace.ReplaceAllString(name, "_") + "_Resume.pdf"
}
