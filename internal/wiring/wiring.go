// Package wiring assembles the rendering pipeline and enrichment gateway
// from configuration. The server and the CLI share it.
package wiring

import (
	"io/fs"
	"log/slog"
	"os"

	"resume-builder/internal/catalog"
	"resume-builder/internal/config"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/infrastructure"
)

// TemplateRoot returns TEMPLATE_DIR when configured, the embedded bundle
// otherwise.
func TemplateRoot(cfg config.Config) fs.FS {
	if cfg.TemplateDir != "" {
		return os.DirFS(cfg.TemplateDir)
	}
	return catalog.Bundle()
}

func NewCatalog(cfg config.Config) *catalog.Catalog {
	c := catalog.New(TemplateRoot(cfg))
	if !c.Discovered() {
		slog.Warn("no templates discovered, listing built-in ids", "component", "catalog", "dir", cfg.TemplateDir)
	}
	return c
}

func NewConverter(cfg config.Config) *infrastructure.ChromedpConverter {
	return infrastructure.NewChromedpConverter(infrastructure.ChromeOptions{
		ExecPath:  cfg.ChromePath,
		RemoteURL: cfg.ChromeURL,
		Timeout:   cfg.RenderTimeout,
	})
}

func NewProcessor(cfg config.Config) *usecase.Processor {
	c := NewCatalog(cfg)
	client := ai.NewClient(cfg.EnrichmentURL, cfg.EnrichmentConnectTimeout, cfg.EnrichmentResponseTimeout)
	return usecase.NewProcessor(
		c,
		render.NewRenderer(c, cfg.TemplateStrict),
		NewConverter(cfg),
		usecase.NewGateway(client),
	)
}
