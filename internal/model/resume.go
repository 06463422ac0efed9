package model

import "encoding/json"

// Go models for the resume payload exchanged with clients and the enrichment
// service. JSON names follow the wire format used by both.

type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	LinkedIn  string `json:"linkedIn,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Naukri    string `json:"naukri,omitempty"`
}

type Experience struct {
	ID           string   `json:"id,omitempty"`
	Company      string   `json:"company"`
	Position     string   `json:"position,omitempty"`
	JobTitle     string   `json:"jobTitle,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Current      bool     `json:"current,omitempty"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements,omitempty"`
}

// Title returns the role title; clients send either position or jobTitle.
func (e Experience) Title() string {
	if e.Position != "" {
		return e.Position
	}
	return e.JobTitle
}

type Education struct {
	ID          string `json:"id,omitempty"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

type Project struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

type Certification struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// ResumeData is the root aggregate. A nil collection means the section was
// absent; an empty one means it was sent empty. Both render as no content.
type ResumeData struct {
	PersonalInfo     *PersonalInfo   `json:"personalInfo"`
	Summary          string          `json:"summary,omitempty"`
	Skills           []string        `json:"skills"`
	Experience       []Experience    `json:"experience"`
	Education        []Education     `json:"education"`
	Projects         []Project       `json:"projects"`
	Certifications   []Certification `json:"certifications"`
	Languages        []Language      `json:"languages"`
	UnexpectedFields map[string]any  `json:"unexpectedFields,omitempty"`
	RawText          string          `json:"rawText,omitempty"`
	JobDescription   string          `json:"jobDescription,omitempty"`
}

var knownFields = map[string]struct{}{
	"personalInfo":     {},
	"summary":          {},
	"skills":           {},
	"experience":       {},
	"education":        {},
	"projects":         {},
	"certifications":   {},
	"languages":        {},
	"unexpectedFields": {},
	"rawText":          {},
	"jobDescription":   {},
}

// UnmarshalJSON decodes the known sections and keeps every unrecognized
// top-level key in UnexpectedFields. An explicit unexpectedFields entry wins
// over a top-level key of the same name.
func (r *ResumeData) UnmarshalJSON(b []byte) error {
	type plain ResumeData
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for key, msg := range raw {
		if _, ok := knownFields[key]; ok {
			continue
		}
		var v any
		if err := json.Unmarshal(msg, &v); err != nil {
			return err
		}
		if p.UnexpectedFields == nil {
			p.UnexpectedFields = make(map[string]any)
		}
		if _, exists := p.UnexpectedFields[key]; !exists {
			p.UnexpectedFields[key] = v
		}
	}

	*r = ResumeData(p)
	return nil
}

// EnhancedResume pairs the submitted resume with the improved version.
type EnhancedResume struct {
	OriginalResume ResumeData `json:"originalResume"`
	EnhancedResume ResumeData `json:"enhancedResume"`
	Improvements   []string   `json:"improvements"`
	AISuggestions  []string   `json:"aiSuggestions"`
}
