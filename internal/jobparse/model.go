package jobparse

import "resume-coach/internal/nlp"

// ParsedJob is the structured view of a free-text job description. Fields
// are independently nullable: absence means "not found", never an error.
type ParsedJob struct {
	Skills          []string     `json:"skills"`
	ExperienceYears *string      `json:"experience_years"`
	Qualifications  []string     `json:"qualifications"`
	Salary          *string      `json:"salary"`
	Location        *string      `json:"location"`
	Entities        []nlp.Entity `json:"entities"`
	JobTitle        *string      `json:"job_title"`
	Company         *string      `json:"company"`
}
