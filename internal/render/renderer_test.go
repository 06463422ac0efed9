package render

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"resume-builder/internal/catalog"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundled(strict bool) (*catalog.Catalog, *Renderer) {
	c := catalog.New(catalog.Bundle())
	return c, NewRenderer(c, strict)
}

func TestRenderBundledTemplates(t *testing.T) {
	c, r := bundled(false)

	minimal := model.ResumeData{
		PersonalInfo: &model.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
	}
	full := model.SampleResume()
	full.UnexpectedFields = map[string]any{"awards": "Royal Medal"}

	for _, d := range c.List() {
		t.Run(d.ID, func(t *testing.T) {
			html, err := r.Render(d.ID, Bind(full))
			require.NoError(t, err)
			assert.Contains(t, html, "Alex Morgan")
			assert.Contains(t, html, "Northwind Systems")
			assert.Contains(t, html, "Present", "current role shows as ongoing")
			assert.Contains(t, html, "Royal Medal")

			html, err = r.Render(d.ID, Bind(minimal))
			require.NoError(t, err)
			assert.Contains(t, html, "Ada Lovelace")
			assert.NotContains(t, html, "Certifications")
			assert.NotContains(t, html, "<no value>")
		})
	}
}

func TestRenderBlankValuesAreAbsent(t *testing.T) {
	c, r := bundled(false)
	summaryHeadings := map[string]string{
		"minimalist":          "<h2>Summary</h2>",
		"modern-professional": "<h2>Professional Summary</h2>",
		"traditional":         "<h2>Objective</h2>",
		"executive":           "<h2>Executive Profile</h2>",
		"creative-designer":   "<h2>About Me</h2>",
		"artistic":            "<h2>Statement</h2>",
	}
	blank := "  "
	data := model.ResumeData{
		PersonalInfo: &model.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Summary:      "   ",
		Experience: []model.Experience{
			{Company: "Analytical Engines", Position: "Programmer", StartDate: "1842-01", EndDate: &blank, Description: "Notes on the engine."},
		},
	}

	for _, d := range c.List() {
		t.Run(d.ID, func(t *testing.T) {
			html, err := r.Render(d.ID, Bind(data))
			require.NoError(t, err)
			assert.NotContains(t, html, summaryHeadings[d.ID])
			assert.Contains(t, html, "1842-01 - Present")
		})
	}
}

func TestRenderNilPersonalInfo(t *testing.T) {
	_, r := bundled(false)
	_, err := r.Render("minimalist", Bind(model.ResumeData{}))
	assert.NoError(t, err)
}

func TestRenderIsDeterministic(t *testing.T) {
	_, r := bundled(false)
	data := model.SampleResume()
	data.UnexpectedFields = map[string]any{"b": 1, "a": 2, "c": []any{"x", "y"}}

	first, err := r.Render("modern-professional", Bind(data))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.Render("modern-professional", Bind(data))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRenderEscapesInput(t *testing.T) {
	_, r := bundled(false)
	data := model.SampleResume()
	data.Summary = `<script>alert(1)</script>`

	html, err := r.Render("minimalist", Bind(data))
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderErrors(t *testing.T) {
	root := fstest.MapFS{
		"broken.gohtml":   {Data: []byte(`{{if .summary}}unterminated`)},
		"badfunc.gohtml":  {Data: []byte(`{{ upper .summary }}`)},
		"badfield.gohtml": {Data: []byte(`{{ .personalInfo.Nickname }}`)},
		"ok.gohtml":       {Data: []byte(`<p>{{ .projects }}</p>`)},
	}
	r := NewRenderer(catalog.New(root), false)
	ctx := Bind(model.SampleResume())

	_, err := r.Render("missing", ctx)
	assert.True(t, errors.Is(err, domain.ErrTemplateNotFound))

	_, err = r.Render("../ok", ctx)
	assert.True(t, errors.Is(err, domain.ErrTemplateNotFound))

	for _, id := range []string{"broken", "badfunc", "badfield"} {
		_, err = r.Render(id, ctx)
		assert.True(t, errors.Is(err, domain.ErrTemplateProcessing), "%s: %v", id, err)
		assert.Contains(t, err.Error(), id)
	}

	html, err := r.Render("ok", Bind(model.ResumeData{}))
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", strings.TrimSpace(html))
}

func TestRenderStrictMissingKey(t *testing.T) {
	root := fstest.MapFS{"t.gohtml": {Data: []byte(`{{if hasContent .projects}}x{{end}}`)}}
	ctx := Bind(model.ResumeData{})

	_, err := NewRenderer(catalog.New(root), true).Render("t", ctx)
	assert.True(t, errors.Is(err, domain.ErrTemplateProcessing))

	out, err := NewRenderer(catalog.New(root), false).Render("t", ctx)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
