package model

import "strings"

// Clean returns a normalized copy: name and summary trimmed, email trimmed
// and lower-cased, skills trimmed with blanks dropped. r is not modified.
func (r ResumeData) Clean() ResumeData {
	out := r
	if r.PersonalInfo != nil {
		pi := *r.PersonalInfo
		pi.FullName = strings.TrimSpace(pi.FullName)
		pi.Email = strings.ToLower(strings.TrimSpace(pi.Email))
		out.PersonalInfo = &pi
	}
	out.Summary = strings.TrimSpace(r.Summary)
	if r.Skills != nil {
		skills := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
		out.Skills = skills
	}
	return out
}
