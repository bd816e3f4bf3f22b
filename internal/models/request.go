package models

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GapRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

type AtsCheckRequest struct {
	ResumeText string `json:"resumeText"`
}

type ImproveBulletsRequest struct {
	Bullets        []string `json:"bullets"`
	JobDescription string   `json:"jobDescription"`
}

type ExtractKeywordsRequest struct {
	JobDescription string `json:"jobDescription"`
}

type LinkedinRequest struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}

type GenerateContentRequest struct {
	Section  string `json:"section"`
	JobTitle string `json:"jobTitle"`
}

type CoverLetterRequest struct {
	Company  string   `json:"company"`
	JobTitle string   `json:"jobTitle"`
	FullName string   `json:"fullName"`
	Skills   []string `json:"skills"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
