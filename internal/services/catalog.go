package services

import (
	"sort"
	"strings"
)

var jobTitles = map[string][]string{
	"technology": {"Software Engineer", "Data Scientist", "DevOps Engineer", "UI/UX Designer", "Product Manager"},
	"finance":    {"Financial Analyst", "Accountant", "Investment Banker", "Risk Manager", "CFO"},
	"healthcare": {"Nurse", "Doctor", "Pharmacist", "Medical Assistant", "Healthcare Manager"},
	"education":  {"Teacher", "Professor", "Curriculum Developer", "Training Specialist", "Education Manager"},
	"marketing":  {"Marketing Manager", "Content Writer", "SEO Specialist", "Brand Manager", "Digital Marketer"},
}

var skillsByIndustry = map[string][]string{
	"technology": {"Python", "JavaScript", "SQL", "AWS", "Docker", "Kubernetes", "React", "Node.js", "Java", "C++"},
	"finance":    {"Excel", "Financial Modeling", "SAP", "Bloomberg Terminal", "Risk Analysis", "Budgeting", "Python", "SQL"},
	"healthcare": {"Patient Care", "EMR Systems", "Medical Terminology", "HIPAA", "Clinical Skills", "EHR"},
	"education":  {"Curriculum Design", "Student Assessment", "Lesson Planning", "Mentoring", "Research", "LMS"},
	"marketing":  {"SEO", "Content Marketing", "Google Analytics", "Social Media", "Email Marketing", "CRM"},
}

type CatalogService interface {
	Industries() []string
	JobTitles(industry string) ([]string, bool)
	Skills(industry string) ([]string, bool)
}

type catalogService struct{}

func NewCatalogService() CatalogService {
	return &catalogService{}
}

// Industries implements CatalogService.
func (c *catalogService) Industries() []string {
	industries := make([]string, 0, len(jobTitles))
	for industry := range jobTitles {
		industries = append(industries, industry)
	}
	sort.Strings(industries)
	return industries
}

// JobTitles implements CatalogService.
func (c *catalogService) JobTitles(industry string) ([]string, bool) {
	return lookupIndustry(jobTitles, industry)
}

// Skills implements CatalogService.
func (c *catalogService) Skills(industry string) ([]string, bool) {
	return lookupIndustry(skillsByIndustry, industry)
}

func lookupIndustry(table map[string][]string, industry string) ([]string, bool) {
	values, ok := table[strings.ToLower(strings.TrimSpace(industry))]
	if !ok {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}
