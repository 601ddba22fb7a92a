package store

import (
	"errors"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is a structural precheck run on the raw bytes before
// typed decoding. It catches wrong shapes and unsupported versions with a
// useful failing path; the detailed range rules live in the model package.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "contact_info"],
  "properties": {
    "version": {"type": "string", "enum": ["1.0"]},
    "last_updated": {"type": "string"},
    "contact_info": {
      "type": "object",
      "required": ["name", "email", "phone"],
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "linkedin": {"type": "string"},
        "location": {"type": "string"}
      }
    },
    "jobs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["company", "title", "start_date"],
        "properties": {
          "company": {"type": "string"},
          "title": {"type": "string"},
          "start_date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}$"},
          "end_date": {"type": "string", "pattern": "^([0-9]{4}-[0-9]{2}|Present)$"}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "category", "proficiency", "last_used", "examples"],
        "properties": {
          "name": {"type": "string"},
          "category": {"type": "string"},
          "proficiency": {"type": "string"},
          "last_used": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}$"},
          "examples": {"type": "array", "minItems": 1}
        }
      }
    },
    "education": {"type": "array", "items": {"type": "object"}},
    "certifications": {"type": "array", "items": {"type": "object"}},
    "projects": {"type": "array", "items": {"type": "object"}},
    "personal_values": {"type": "array", "items": {"type": "object"}},
    "skipped_skills": {"type": "array", "items": {"type": "string"}}
  }
}`

// checkDocument validates raw store bytes against the document schema.
// Returns the failing field path and a descriptive error, or "" and nil.
func checkDocument(data []byte) (string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		// Not valid JSON at all.
		return "", err
	}
	if result.Valid() {
		return "", nil
	}
	first := result.Errors()[0]
	return first.Field(), errors.New(first.Description())
}
