// Package detect scans job-description text for technology keywords that
// are absent from the career store. It feeds the admission pipeline's
// discovery hook; no store mutation happens here.
package detect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/rcliao/career-vault/internal/model"
)

// techKeywords are the known technologies and methodologies the detector
// looks for, lowercased.
var techKeywords = map[string]bool{
	// Programming languages
	"python": true, "javascript": true, "java": true, "c++": true, "c#": true,
	"ruby": true, "go": true, "rust": true, "typescript": true, "php": true,
	"swift": true, "kotlin": true, "scala": true,

	// Frameworks
	"react": true, "vue": true, "angular": true, "django": true, "flask": true,
	"spring": true, "rails": true, "express": true, "fastapi": true,
	"next.js": true, "nuxt": true, "svelte": true,

	// Databases
	"sql": true, "postgresql": true, "mysql": true, "mongodb": true,
	"redis": true, "elasticsearch": true, "dynamodb": true, "cassandra": true,
	"oracle": true, "sqlite": true,

	// Cloud & DevOps
	"aws": true, "azure": true, "gcp": true, "docker": true,
	"kubernetes": true, "terraform": true, "jenkins": true, "gitlab": true,
	"github actions": true, "circleci": true,

	// Data & Analytics
	"looker": true, "tableau": true, "power bi": true, "pandas": true,
	"numpy": true, "spark": true, "hadoop": true, "airflow": true,
	"kafka": true, "snowflake": true,

	// Product & collaboration tools
	"jira": true, "confluence": true, "asana": true, "figma": true,
	"miro": true, "amplitude": true, "mixpanel": true,
	"google analytics": true, "fullstory": true, "a/b testing": true,

	// Methodologies
	"agile": true, "scrum": true, "kanban": true, "lean": true,
	"waterfall": true, "safe": true,
}

// displayNames maps lowercased keywords to their proper capitalization.
var displayNames = map[string]string{
	"sql":        "SQL",
	"aws":        "AWS",
	"gcp":        "GCP",
	"api":        "API",
	"rest":       "REST",
	"graphql":    "GraphQL",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"mongodb":    "MongoDB",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"next.js":    "Next.js",
	"vue.js":     "Vue.js",
	"react.js":   "React.js",
	"node.js":    "Node.js",
}

var acronymRe = regexp.MustCompile(`\b([A-Z]{3,})\b`)

// MissingSkills returns up to max skills mentioned in the job description
// that are neither in the store's skill list nor previously skipped,
// ordered by how often they appear in the description.
func MissingSkills(jobDescription string, cs *model.CareerStore, max int) []string {
	if max <= 0 {
		max = 5
	}
	descLower := strings.ToLower(jobDescription)

	known := func(name string) bool {
		return cs.FindSkill(name) != nil || cs.HasSkipped(name)
	}

	detected := make(map[string]bool)
	for kw := range techKeywords {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		if re.MatchString(descLower) && !known(kw) {
			detected[displayName(kw)] = true
		}
	}

	// Uppercase acronyms of 4+ letters are safe to propose even when not
	// in the keyword table (REST, JSON, HTTP). Three-letter ones must be
	// known keywords to avoid false matches on ordinary words.
	for _, m := range acronymRe.FindAllString(jobDescription, -1) {
		lower := strings.ToLower(m)
		if known(lower) {
			continue
		}
		if techKeywords[lower] {
			detected[displayName(lower)] = true
		} else if len(m) >= 4 {
			detected[m] = true
		}
	}

	names := make([]string, 0, len(detected))
	for name := range detected {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci := strings.Count(descLower, strings.ToLower(names[i]))
		cj := strings.Count(descLower, strings.ToLower(names[j]))
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})

	if len(names) > max {
		names = names[:max]
	}
	return names
}

func displayName(kw string) string {
	if d, ok := displayNames[kw]; ok {
		return d
	}
	words := strings.Fields(kw)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
