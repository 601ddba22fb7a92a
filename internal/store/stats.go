package store

import "time"

// Stats summarizes the store contents.
type Stats struct {
	Jobs            int       `json:"jobs"`
	Skills          int       `json:"skills"`
	EvidencedSkills int       `json:"evidenced_skills"`
	Achievements    int       `json:"achievements"`
	Education       int       `json:"education"`
	Certifications  int       `json:"certifications"`
	Projects        int       `json:"projects"`
	SkippedSkills   int       `json:"skipped_skills"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Stats loads the store and counts its contents. Achievements counts both
// job-scoped achievements and skill examples.
func (s *FileStore) Stats() (Stats, error) {
	cs, err := s.Load()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		Jobs:           len(cs.Jobs),
		Skills:         len(cs.Skills),
		Education:      len(cs.Education),
		Certifications: len(cs.Certifications),
		Projects:       len(cs.Projects),
		SkippedSkills:  len(cs.SkippedSkills),
		LastUpdated:    cs.LastUpdated,
	}
	for _, j := range cs.Jobs {
		st.Achievements += len(j.Achievements)
	}
	for _, sk := range cs.Skills {
		st.Achievements += len(sk.Examples)
		if len(sk.Examples) > 0 {
			st.EvidencedSkills++
		}
	}
	return st, nil
}
