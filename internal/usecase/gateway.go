package usecase

import (
	"context"
	"io"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Enricher is the raw enrichment service; pkg/ai.Client implements it.
type Enricher interface {
	Extract(ctx context.Context, file io.Reader, filename, contentType string) (model.ResumeData, error)
	Enhance(ctx context.Context, data model.ResumeData) (model.EnhancedResume, error)
	Score(ctx context.Context, data model.ResumeData, jobDescription string) (domain.AtsScore, error)
	Feedback(ctx context.Context, data model.ResumeData) (domain.Feedback, error)
}

// Outcome carries an enrichment result. When Fallback is set, Value is the
// documented substitute and Cause is the failure that triggered it.
type Outcome[T any] struct {
	Value    T
	Fallback bool
	Cause    error
}

// Gateway applies the enrichment failure policy: extraction, enhancement and
// scoring degrade to deterministic substitutes; feedback failures propagate.
type Gateway struct {
	client Enricher
}

func NewGateway(client Enricher) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) Extract(ctx context.Context, file io.Reader, filename, contentType string) Outcome[model.ResumeData] {
	data, err := g.client.Extract(ctx, file, filename, contentType)
	if err != nil {
		return fallback(ctx, "extract", model.SampleResume(), err)
	}
	return Outcome[model.ResumeData]{Value: data}
}

func (g *Gateway) Enhance(ctx context.Context, data model.ResumeData) Outcome[model.EnhancedResume] {
	enhanced, err := g.client.Enhance(ctx, data)
	if err != nil {
		return fallback(ctx, "enhance", mockEnhancement(data), err)
	}
	return Outcome[model.EnhancedResume]{Value: enhanced}
}

func (g *Gateway) Score(ctx context.Context, data model.ResumeData, jobDescription string) Outcome[domain.AtsScore] {
	score, err := g.client.Score(ctx, data, jobDescription)
	if err != nil {
		return fallback(ctx, "ats-score", mockScore(), err)
	}
	return Outcome[domain.AtsScore]{Value: score}
}

func (g *Gateway) Feedback(ctx context.Context, data model.ResumeData) (domain.Feedback, error) {
	return g.client.Feedback(ctx, data)
}

func fallback[T any](ctx context.Context, op string, v T, cause error) Outcome[T] {
	slog.WarnContext(ctx, "enrichment fallback",
		"component", "gateway",
		"operation", op,
		"error", cause,
	)
	return Outcome[T]{Value: v, Fallback: true, Cause: cause}
}
