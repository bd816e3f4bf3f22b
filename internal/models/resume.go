package models

type Experience struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
}

// ResumeProfile is the structured input for the PDF export. Only FullName is
// required; every other field falls back to a placeholder when rendered.
type ResumeProfile struct {
	FullName    string       `json:"fullName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Location    string       `json:"location"`
	Summary     string       `json:"summary"`
	Skills      []string     `json:"skills"`
	Experiences []Experience `json:"experiences"`
	Educations  []Education  `json:"educations"`
}
