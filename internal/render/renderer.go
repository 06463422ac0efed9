package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"resume-builder/internal/domain"
)

// Resolver returns template source by id.
type Resolver interface {
	Resolve(id string) (string, error)
}

// Renderer expands templates into HTML. A fresh template instance is parsed
// for every call, so one Renderer serves concurrent requests.
type Renderer struct {
	templates Resolver
	strict    bool
}

// NewRenderer builds a Renderer. In strict mode a template that reads a key
// absent from the context fails instead of seeing a zero value.
func NewRenderer(templates Resolver, strict bool) *Renderer {
	return &Renderer{templates: templates, strict: strict}
}

func (r *Renderer) Render(id string, ctx Context) (string, error) {
	src, err := r.templates.Resolve(id)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", domain.ErrTemplateProcessing, err)
	}

	missingKey := "missingkey=zero"
	if r.strict {
		missingKey = "missingkey=error"
	}

	tpl, err := template.New(id).Option(missingKey).Funcs(ctx.Funcs).Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: parse %s: %w", domain.ErrTemplateProcessing, id, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx.Values); err != nil {
		return "", fmt.Errorf("%w: execute %s: %w", domain.ErrTemplateProcessing, id, err)
	}
	return buf.String(), nil
}
