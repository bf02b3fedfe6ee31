// Package types provides type definitions for structured data used throughout the internship matcher.
package types

// Experience is a single work or project entry on a candidate profile.
type Experience struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry on a candidate profile.
type Education struct {
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
}

// CandidateProfile is the student profile the engine scores listings against.
// The engine only reads it.
type CandidateProfile struct {
	ID                  string       `json:"id,omitempty"`
	Skills              []string     `json:"skills"`
	Major               string       `json:"major,omitempty"`
	University          string       `json:"university,omitempty"`
	Location            string       `json:"location,omitempty"`
	Bio                 string       `json:"bio,omitempty"`
	Year                string       `json:"year,omitempty"`
	ExperienceLevel     string       `json:"experienceLevel,omitempty"`
	Experience          []Experience `json:"experience"`
	Education           []Education  `json:"education"`
	PreferredCategories []string     `json:"preferredCategories,omitempty"`
}

// DefaultProfile returns the fallback profile used when no profile is available.
func DefaultProfile() *CandidateProfile {
	return &CandidateProfile{
		Skills:     []string{"React", "JavaScript", "Python", "Node.js"},
		Major:      "Computer Science",
		University: "National University of Singapore",
		Location:   "Singapore",
		Experience: []Experience{},
		Education:  []Education{},
		Year:       "Year 3",
	}
}

// ProfileSummary reports how much material a profile carries.
type ProfileSummary struct {
	SkillsCount     int `json:"skillsCount"`
	ExperienceCount int `json:"experienceCount"`
	EducationCount  int `json:"educationCount"`
}

// Summary returns counts of the profile's skills, experience and education entries.
func (p *CandidateProfile) Summary() ProfileSummary {
	if p == nil {
		return ProfileSummary{}
	}
	return ProfileSummary{
		SkillsCount:     len(p.Skills),
		ExperienceCount: len(p.Experience),
		EducationCount:  len(p.Education),
	}
}
