package domain

// TemplateDescriptor is the public listing entry for a renderable template.
type TemplateDescriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Preview     string   `json:"preview"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
}

type AtsFeedback struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// AtsScore is the applicant-tracking compatibility result. Score is 0..100.
type AtsScore struct {
	Score           int           `json:"score"`
	Feedback        []AtsFeedback `json:"feedback"`
	Suggestions     []string      `json:"suggestions"`
	MissingSkills   []string      `json:"missingSkills,omitempty"`
	MatchPercentage *int          `json:"matchPercentage,omitempty"`
}

// Feedback is the qualitative review returned by the enrichment service.
type Feedback struct {
	AtsScore     int             `json:"atsScore"`
	Suggestions  []string        `json:"suggestions"`
	Completeness map[string]bool `json:"completeness"`
	AtsFeedback  []string        `json:"atsFeedback"`
}
