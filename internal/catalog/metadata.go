package catalog

import (
	"strings"

	"resume-builder/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type meta struct {
	name        string
	description string
	category    string
	features    []string
}

// metadata is never written after init.
var metadata = map[string]meta{
	"minimalist": {
		name:        "Minimalist",
		description: "Clean and simple design focusing on content with elegant spacing and typography",
		category:    "Minimalist",
		features:    []string{"Clean Layout", "ATS Friendly", "Easy to Read"},
	},
	"modern-professional": {
		name:        "Modern Professional",
		description: "Contemporary design with accent colors, visual hierarchy, and modern layout elements",
		category:    "Modern",
		features:    []string{"Accent Colors", "Visual Hierarchy", "Professional"},
	},
	"traditional": {
		name:        "Traditional",
		description: "Classic format preferred by traditional industries and conservative recruiters",
		category:    "Traditional",
		features:    []string{"Classic Format", "Conservative", "Time-tested"},
	},
	"executive": {
		name:        "Executive",
		description: "Professional executive format with emphasis on leadership and achievements",
		category:    "Executive",
		features:    []string{"Leadership Focus", "Achievement Driven", "Professional"},
	},
	"creative": {
		name:        "Creative",
		description: "Innovative design with unique layout elements for creative professionals",
		category:    "Creative",
		features:    []string{"Two Column", "Bold Headings", "Portfolio Links"},
	},
	"creative-designer": {
		name:        "Creative Designer",
		description: "Innovative design with unique layout elements for creative professionals",
		category:    "Creative",
		features:    []string{"Two Column", "Bold Headings", "Portfolio Links"},
	},
	"artistic": {
		name:        "Artistic",
		description: "Expressive layout with color blocks and decorative typography for artists and designers",
		category:    "Creative",
		features:    []string{"Color Blocks", "Decorative Type", "Standout Design"},
	},
}

const genericDescription = "Custom resume template"

var nameSeparators = strings.NewReplacer("-", " ", "_", " ")

func describe(id string) domain.TemplateDescriptor {
	d := domain.TemplateDescriptor{
		ID:      id,
		Preview: "/assets/templates/" + id + "-preview.png",
	}
	if m, ok := metadata[id]; ok {
		d.Name = m.name
		d.Description = m.description
		d.Category = m.category
		d.Features = append([]string(nil), m.features...)
		return d
	}
	d.Name = generatedName(id)
	d.Description = genericDescription
	d.Category = categoryFor(id)
	d.Features = []string{"Professional", "ATS Friendly"}
	return d
}

// generatedName turns "my_cool-template" into "My Cool Template".
func generatedName(id string) string {
	// Casers carry state and are not safe to share between goroutines.
	caser := cases.Title(language.English)
	return caser.String(strings.Join(strings.Fields(nameSeparators.Replace(id)), " "))
}

func categoryFor(id string) string {
	switch {
	case strings.Contains(id, "modern"):
		return "Modern"
	case strings.Contains(id, "minimalist"):
		return "Minimalist"
	case strings.Contains(id, "traditional"):
		return "Traditional"
	default:
		return "Standard"
	}
}
