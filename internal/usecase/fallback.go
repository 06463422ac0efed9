package usecase

import (
	"fmt"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// FallbackScore is reported when the scoring service cannot be reached.
const FallbackScore = 75

var (
	addedSkills = []string{"Leadership", "Strategic Planning", "Problem Solving"}

	mockImprovements = []string{
		"Enhanced professional summary with industry keywords",
		"Optimized skills section for ATS compatibility",
		"Improved action verbs and quantifiable achievements",
		"Added relevant technical competencies",
	}

	mockSuggestions = []string{
		"Consider adding specific metrics and numbers to quantify your achievements",
		"Include relevant certifications or training programs",
		"Tailor keywords to match your target job descriptions",
	}
)

// mockEnhancement derives an enhanced resume from original without calling
// out. The result depends only on original.
func mockEnhancement(original model.ResumeData) model.EnhancedResume {
	enhanced := original

	lead := original.Skills
	if len(lead) > 3 {
		lead = lead[:3]
	}
	expertise := strings.Join(lead, ", ")
	if expertise == "" {
		expertise = "core competencies"
	}
	if original.Summary != "" {
		enhanced.Summary = fmt.Sprintf("Results-driven professional with proven expertise in %s. %s", expertise, original.Summary)
	} else {
		enhanced.Summary = fmt.Sprintf("Dynamic professional with extensive experience in %s and a track record of delivering exceptional results.", expertise)
	}

	seen := make(map[string]struct{}, len(original.Skills)+len(addedSkills))
	skills := make([]string, 0, len(original.Skills)+len(addedSkills))
	for _, s := range append(append([]string(nil), original.Skills...), addedSkills...) {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	enhanced.Skills = skills

	return model.EnhancedResume{
		OriginalResume: original,
		EnhancedResume: enhanced,
		Improvements:   append([]string(nil), mockImprovements...),
		AISuggestions:  append([]string(nil), mockSuggestions...),
	}
}

func mockScore() domain.AtsScore {
	return domain.AtsScore{
		Score: FallbackScore,
		Feedback: []domain.AtsFeedback{
			{Category: "Keyword Optimization", Score: 70, Message: "Add more keywords from the job description", Severity: "medium"},
			{Category: "Format Compatibility", Score: 85, Message: "Layout is readable by most applicant tracking systems", Severity: "low"},
			{Category: "Content Structure", Score: 75, Message: "Include measurable results in your experience entries", Severity: "medium"},
			{Category: "Skills Matching", Score: 70, Message: "List the skills named in the job posting explicitly", Severity: "medium"},
		},
		Suggestions: []string{
			"Use standard section headings such as Experience, Education and Skills",
			"Quantify achievements with numbers where possible",
			"Mirror the wording of the job description in your skills section",
		},
	}
}
