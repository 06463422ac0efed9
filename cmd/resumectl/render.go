package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/internal/wiring"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var templateID string

//nolint:gochecknoglobals // Cobra boilerplate
var outPath string

//nolint:gochecknoglobals // Cobra boilerplate
var htmlOnly bool

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render <resume.json>",
	Short: "Render a resume JSON file to PDF",
	Long: `Render a resume JSON file with one of the catalog templates.

Example:
  resumectl render ada.json --template executive
  resumectl render ada.json --template minimalist --html --out ada.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&templateID, "template", "t", "modern-professional", "Template id")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default derived from the person's name)")
	renderCmd.Flags().BoolVar(&htmlOnly, "html", false, "Write the self-contained HTML instead of a PDF")
}

func runRender(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	var data model.ResumeData
	if err := json.Unmarshal(b, &data); err != nil {
		return fmt.Errorf("decode resume %s: %w", args[0], err)
	}
	if err := data.Validate(); err != nil {
		return err
	}

	p := wiring.NewProcessor(cfg)

	var out []byte
	if htmlOnly {
		doc, err := p.RenderHTML(data, templateID)
		if err != nil {
			return err
		}
		out = []byte(doc)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RenderTimeout)
		defer cancel()
		out, err = p.RenderResume(ctx, data, templateID)
		if err != nil {
			return err
		}
	}

	path := outPath
	if path == "" {
		path = usecase.GenerateFilename(data.PersonalInfo.FullName)
		if htmlOnly {
			path = path[:len(path)-len(filepath.Ext(path))] + ".html"
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(out))
	return nil
}
