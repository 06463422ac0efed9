package ai

import (
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Wire shapes for the enrichment service. Decoding into these ignores keys
// the service adds and leaves absent ones at their zero value.

// wireResume drops model.ResumeData's custom decoder, so unknown keys in a
// service response are ignored rather than kept.
type wireResume model.ResumeData

type scoreRequest struct {
	ResumeData     model.ResumeData `json:"resumeData"`
	JobDescription string           `json:"jobDescription,omitempty"`
}

type wireEnhanced struct {
	OriginalResume *wireResume `json:"originalResume"`
	EnhancedResume *wireResume `json:"enhancedResume"`
	Improvements   []string    `json:"improvements"`
	AISuggestions  []string    `json:"aiSuggestions"`
}

func (w wireEnhanced) toModel() (model.EnhancedResume, error) {
	if w.EnhancedResume == nil {
		return model.EnhancedResume{}, fmt.Errorf("%w: enhance: response has no enhancedResume", domain.ErrEnrichmentUnavailable)
	}
	out := model.EnhancedResume{
		EnhancedResume: model.ResumeData(*w.EnhancedResume),
		Improvements:   nonNil(w.Improvements),
		AISuggestions:  nonNil(w.AISuggestions),
	}
	if w.OriginalResume != nil {
		out.OriginalResume = model.ResumeData(*w.OriginalResume)
	}
	return out, nil
}

type wireScore struct {
	Score           *int                 `json:"score"`
	AtsScore        *int                 `json:"atsScore"`
	Feedback        []domain.AtsFeedback `json:"feedback"`
	Suggestions     []string             `json:"suggestions"`
	MissingSkills   []string             `json:"missingSkills"`
	MatchPercentage *int                 `json:"matchPercentage"`
}

var errNoScore = errors.New("response has no score")

func (w wireScore) toDomain() (domain.AtsScore, error) {
	score := w.Score
	if score == nil {
		score = w.AtsScore
	}
	if score == nil {
		return domain.AtsScore{}, fmt.Errorf("%w: ats-score: %w", domain.ErrEnrichmentUnavailable, errNoScore)
	}
	out := domain.AtsScore{
		Score:         clampScore(*score),
		Feedback:      w.Feedback,
		Suggestions:   nonNil(w.Suggestions),
		MissingSkills: w.MissingSkills,
	}
	if out.Feedback == nil {
		out.Feedback = []domain.AtsFeedback{}
	}
	if w.MatchPercentage != nil {
		p := clampScore(*w.MatchPercentage)
		out.MatchPercentage = &p
	}
	return out, nil
}

type wireFeedback struct {
	AtsScore     *int            `json:"atsScore"`
	LegacyScore  *int            `json:"ats_score"`
	Suggestions  []string        `json:"suggestions"`
	Completeness map[string]bool `json:"completeness"`
	AtsFeedback  []string        `json:"atsFeedback"`
}

func (w wireFeedback) toDomain() domain.Feedback {
	out := domain.Feedback{
		Suggestions:  nonNil(w.Suggestions),
		Completeness: w.Completeness,
		AtsFeedback:  nonNil(w.AtsFeedback),
	}
	switch {
	case w.AtsScore != nil:
		out.AtsScore = clampScore(*w.AtsScore)
	case w.LegacyScore != nil:
		out.AtsScore = clampScore(*w.LegacyScore)
	}
	if out.Completeness == nil {
		out.Completeness = map[string]bool{}
	}
	return out
}

func clampScore(v int) int {
	return min(max(v, 0), 100)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
