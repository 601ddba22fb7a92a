// Package model defines the career data entities and their validation rules.
package model

import "time"

// Version tags the loader understands.
var SupportedVersions = map[string]bool{
	"1.0": true,
}

// CurrentVersion is written by new stores.
const CurrentVersion = "1.0"

// CareerStore is the root aggregate of all career data, persisted as one
// JSON document.
type CareerStore struct {
	Version        string          `json:"version"`
	LastUpdated    time.Time       `json:"last_updated"`
	ContactInfo    ContactInfo     `json:"contact_info"`
	Jobs           []Job           `json:"jobs,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	PersonalValues []PersonalValue `json:"personal_values,omitempty"`
	SkippedSkills  []string        `json:"skipped_skills,omitempty"`
}

// ContactInfo holds the user's contact details.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// Job is a position in the work history. SkillsUsed holds weak references
// that must resolve to a Skill name at whole-store validation time.
type Job struct {
	Company          string        `json:"company"`
	Title            string        `json:"title"`
	StartDate        YearMonth     `json:"start_date"`
	EndDate          YearMonth     `json:"end_date,omitempty"`
	Location         string        `json:"location,omitempty"`
	Description      string        `json:"description,omitempty"`
	Responsibilities []string      `json:"responsibilities,omitempty"`
	Achievements     []Achievement `json:"achievements,omitempty"`
	SkillsUsed       []string      `json:"skills_used,omitempty"`
}

// Skill is a capability with evidence. A skill needs at least one example
// to be considered evidenced.
type Skill struct {
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Proficiency string        `json:"proficiency"`
	LastUsed    YearMonth     `json:"last_used"`
	Examples    []Achievement `json:"examples"`
}

// Achievement is a quantifiable accomplishment with context. Achievements
// are value objects: copied into whichever parent holds them.
type Achievement struct {
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Timeframe   Timeframe `json:"timeframe"`
	Result      string    `json:"result,omitempty"`
	Metrics     []string  `json:"metrics,omitempty"`
}

// Education is an educational background entry.
type Education struct {
	Degree   string   `json:"degree"`
	School   string   `json:"school"`
	Dates    string   `json:"dates"`
	Location string   `json:"location,omitempty"`
	Details  []string `json:"details,omitempty"`
}

// Certification is a professional certification.
type Certification struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	DateObtained string `json:"date_obtained,omitempty"`
	Expiration   string `json:"expiration,omitempty"`
	Details      string `json:"details,omitempty"`
}

// Project is a side project or volunteer work.
type Project struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Timeframe    Timeframe `json:"timeframe"`
	Role         string    `json:"role,omitempty"`
	Technologies []string  `json:"technologies,omitempty"`
	Achievements []string  `json:"achievements,omitempty"`
}

// PersonalValue captures values, motivations, or personal stories.
type PersonalValue struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

// DiscoveredEntry is a transient skill/achievement candidate. It exists
// only inside the admission pipeline until accepted into the store.
type DiscoveredEntry struct {
	Name             string    `json:"name"`
	Company          string    `json:"company"`
	Timeframe        Timeframe `json:"timeframe"`
	Example          string    `json:"example"`
	Result           string    `json:"result,omitempty"`
	Category         string    `json:"category,omitempty"`
	DiscoveredDuring string    `json:"discovered_during,omitempty"`
}

// Achievement converts the candidate into the value object stored on a
// Skill once the entry is accepted.
func (d DiscoveredEntry) Achievement() Achievement {
	return Achievement{
		Description: d.Example,
		Company:     d.Company,
		Timeframe:   d.Timeframe,
		Result:      d.Result,
	}
}

// ValidCategories are the allowed skill categories.
var ValidCategories = map[string]bool{
	"technical": true,
	"soft":      true,
	"domain":    true,
}

// ValidProficiencies are the allowed proficiency levels.
var ValidProficiencies = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
	"expert":       true,
}

// ValidValueCategories are the allowed personal value categories.
var ValidValueCategories = map[string]bool{
	"values":         true,
	"personal_story": true,
	"motivation":     true,
}

// NewEmptyStore builds a valid, empty career store.
func NewEmptyStore(contact ContactInfo, now time.Time) *CareerStore {
	return &CareerStore{
		Version:     CurrentVersion,
		LastUpdated: now,
		ContactInfo: contact,
	}
}

// FindSkill returns the skill whose name matches case-insensitively, or nil.
func (s *CareerStore) FindSkill(name string) *Skill {
	for i := range s.Skills {
		if equalFold(s.Skills[i].Name, name) {
			return &s.Skills[i]
		}
	}
	return nil
}

// FindJob returns the job whose company matches case-insensitively, or nil.
func (s *CareerStore) FindJob(company string) *Job {
	for i := range s.Jobs {
		if equalFold(s.Jobs[i].Company, company) {
			return &s.Jobs[i]
		}
	}
	return nil
}

// HasSkipped reports whether the user previously rejected this skill name.
func (s *CareerStore) HasSkipped(name string) bool {
	for _, sk := range s.SkippedSkills {
		if equalFold(sk, name) {
			return true
		}
	}
	return false
}
