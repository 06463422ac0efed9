package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-builder/internal/catalog"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(conv Converter, enricher Enricher) *Processor {
	c := catalog.New(catalog.Bundle())
	return NewProcessor(c, render.NewRenderer(c, false), conv, NewGateway(enricher))
}

func TestRenderResume(t *testing.T) {
	conv := &fakeConverter{}
	p := newTestProcessor(conv, &fakeEnricher{err: errServiceDown})

	pdf, err := p.RenderResume(context.Background(), model.SampleResume(), "minimalist")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Equal(t, 1, conv.calls)
	assert.Contains(t, conv.html, "Alex Morgan")
	assert.NotContains(t, conv.html, `href="base.css"`, "stylesheet inlined before conversion")
}

func TestRenderResumeUnknownTemplate(t *testing.T) {
	conv := &fakeConverter{}
	p := newTestProcessor(conv, &fakeEnricher{err: errServiceDown})

	for _, id := range []string{"does-not-exist", "../etc/passwd", ""} {
		_, err := p.RenderResume(context.Background(), model.SampleResume(), id)
		assert.True(t, errors.Is(err, domain.ErrTemplateNotFound), "id %q: %v", id, err)
	}
	assert.Zero(t, conv.calls)
}

func TestRenderResumeConversionFailure(t *testing.T) {
	p := newTestProcessor(&fakeConverter{err: errBrowserGone}, &fakeEnricher{})

	_, err := p.RenderResume(context.Background(), model.SampleResume(), "traditional")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConversion))
	assert.True(t, errors.Is(err, errBrowserGone))
}

func TestRenderResumeSparseData(t *testing.T) {
	conv := &fakeConverter{}
	p := newTestProcessor(conv, &fakeEnricher{})
	data := model.ResumeData{PersonalInfo: &model.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"}}

	for _, d := range p.ListTemplates() {
		_, err := p.RenderResume(context.Background(), data, d.ID)
		assert.NoError(t, err, d.ID)
		assert.Contains(t, conv.html, "Ada Lovelace", d.ID)
	}
}

func TestPreviewUsesSampleResume(t *testing.T) {
	p := newTestProcessor(&fakeConverter{}, &fakeEnricher{})

	html, err := p.Preview("executive")
	require.NoError(t, err)
	assert.Contains(t, html, "Northwind Systems")

	_, err = p.Preview("nope")
	assert.True(t, errors.Is(err, domain.ErrTemplateNotFound))
}

func TestExtractCleansResult(t *testing.T) {
	fake := &fakeEnricher{extracted: model.ResumeData{
		PersonalInfo: &model.PersonalInfo{FullName: "  Ada ", Email: " ADA@Example.com "},
		Skills:       []string{" Go ", ""},
	}}
	p := newTestProcessor(&fakeConverter{}, fake)

	out := p.Extract(context.Background(), strings.NewReader("doc"), "cv.docx", "")
	assert.False(t, out.Fallback)
	assert.Equal(t, "Ada", out.Value.PersonalInfo.FullName)
	assert.Equal(t, "ada@example.com", out.Value.PersonalInfo.Email)
	assert.Equal(t, []string{"Go"}, out.Value.Skills)
}

func TestScoreJobDescription(t *testing.T) {
	fake := &fakeEnricher{score: domain.AtsScore{Score: 80}}
	p := newTestProcessor(&fakeConverter{}, fake)
	data := model.ResumeData{JobDescription: "Platform engineer"}

	p.Score(context.Background(), data, "  ")
	assert.Equal(t, "Platform engineer", fake.gotJobDesc)

	p.Score(context.Background(), data, "SRE")
	assert.Equal(t, "SRE", fake.gotJobDesc)
}

func TestFeedbackFailure(t *testing.T) {
	p := newTestProcessor(&fakeConverter{}, &fakeEnricher{err: errServiceDown})

	_, err := p.Feedback(context.Background(), model.SampleResume())
	assert.True(t, errors.Is(err, domain.ErrEnrichmentUnavailable))
}

func TestGenerateFilename(t *testing.T) {
	tests := map[string]string{
		"Ada Lovelace":     "Ada_Lovelace_Resume.pdf",
		"Jöhn  O'Doe!!":    "Jhn_ODoe_Resume.pdf",
		" Ada":             "_Ada_Resume.pdf",
		"  Ada  Lovelace ": "_Ada_Lovelace__Resume.pdf",
		"Ada\v\tLovelace":  "Ada_Lovelace_Resume.pdf",
		"!!":               "_Resume.pdf",
		"":                 "_Resume.pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, GenerateFilename(in), "input %q", in)
	}
}
