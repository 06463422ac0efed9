package model

import (
	"errors"
	"testing"

	"resume-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSampleResume(t *testing.T) {
	assert.NoError(t, SampleResume().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ResumeData)
	}{
		{"missing personal info", func(r *ResumeData) { r.PersonalInfo = nil }},
		{"blank name", func(r *ResumeData) { r.PersonalInfo.FullName = "   " }},
		{"empty email", func(r *ResumeData) { r.PersonalInfo.Email = "" }},
		{"malformed email", func(r *ResumeData) { r.PersonalInfo.Email = "not-an-email" }},
		{"experience without company", func(r *ResumeData) { r.Experience[0].Company = "" }},
		{"experience without title", func(r *ResumeData) {
			r.Experience[0].Position = ""
			r.Experience[0].JobTitle = ""
		}},
		{"education without degree", func(r *ResumeData) { r.Education[0].Degree = "" }},
		{"language without proficiency", func(r *ResumeData) { r.Languages[0].Proficiency = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SampleResume()
			tt.mutate(&r)

			err := r.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Problems)
		})
	}
}

func TestValidateAcceptsJobTitleAndMinimalResume(t *testing.T) {
	r := ResumeData{
		PersonalInfo: &PersonalInfo{FullName: "Ada", Email: "ada@example.com"},
		Experience:   []Experience{{Company: "X", JobTitle: "Dev", StartDate: "2020", Description: "d"}},
	}
	assert.NoError(t, r.Validate())
}
