package model

// SampleResume returns a fully populated resume. It backs template previews
// and stands in for extraction when the enrichment service is unreachable.
// Every call returns a fresh value.
func SampleResume() ResumeData {
	ended := "2021-03"
	return ResumeData{
		PersonalInfo: &PersonalInfo{
			FullName: "Alex Morgan",
			Email:    "alex.morgan@example.com",
			Phone:    "+1 555 0100",
			Address:  "Austin, TX",
			LinkedIn: "https://www.linkedin.com/in/alexmorgan",
			GitHub:   "https://github.com/alexmorgan",
			Website:  "https://alexmorgan.dev",
		},
		Summary: "Backend engineer with eight years of experience building reliable services, data pipelines and developer tooling.",
		Skills:  []string{"Go", "PostgreSQL", "Kubernetes", "gRPC", "Terraform"},
		Experience: []Experience{
			{
				ID:          "exp-1",
				Company:     "Northwind Systems",
				Position:    "Senior Software Engineer",
				StartDate:   "2021-04",
				Current:     true,
				Description: "Lead engineer for the billing platform.",
				Achievements: []string{
					"Cut invoice generation latency by 60% by moving batch jobs to a streaming pipeline",
					"Mentored four engineers through their first on-call rotation",
				},
			},
			{
				ID:          "exp-2",
				Company:     "Contoso Labs",
				Position:    "Software Engineer",
				StartDate:   "2017-06",
				EndDate:     &ended,
				Description: "Built internal APIs for the logistics team.",
				Achievements: []string{
					"Designed the shipment tracking API used by 40 internal services",
				},
			},
		},
		Education: []Education{
			{
				ID:          "edu-1",
				Institution: "University of Texas",
				Degree:      "B.Sc.",
				Field:       "Computer Science",
				StartDate:   "2013-09",
				EndDate:     "2017-05",
				GPA:         "3.7",
			},
		},
		Projects: []Project{
			{
				ID:           "proj-1",
				Name:         "pgwatch",
				Description:  "Open source PostgreSQL replication lag monitor.",
				Technologies: []string{"Go", "PostgreSQL", "Prometheus"},
				URL:          "https://github.com/alexmorgan/pgwatch",
			},
		},
		Certifications: []Certification{
			{ID: "cert-1", Name: "Certified Kubernetes Administrator", Issuer: "CNCF", Date: "2022-08"},
		},
		Languages: []Language{
			{Name: "English", Proficiency: "Native"},
			{Name: "Spanish", Proficiency: "Professional"},
		},
	}
}
