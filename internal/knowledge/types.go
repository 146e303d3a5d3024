// Package knowledge loads and holds the read-only datasets the responder
// works from: the profile record, the smalltalk intent table, and the joke
// and meme lists. Datasets are loaded once at startup and never mutated.
package knowledge

// Profile is the career record answers are rendered from. Any field may be
// absent in the source data; formatting code substitutes placeholders instead
// of failing.
type Profile struct {
	Name            string              `json:"name"`
	Summary         string              `json:"summary"`
	About           []string            `json:"about"`
	Experience      []ExperienceEntry   `json:"experience"`
	Education       []EducationEntry    `json:"education"`
	TechnicalSkills map[string][]string `json:"technical_skills"`
	Projects        []Project           `json:"projects"`
}

// ExperienceEntry is one role. Entries are ordered most recent first in the
// source data; loaders must not re-sort.
type ExperienceEntry struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// EducationEntry is one qualification. Either Degree or Course is set.
type EducationEntry struct {
	Degree    string `json:"degree"`
	Course    string `json:"course"`
	Institute string `json:"institute"`
	Date      string `json:"date"`
}

// Project is one portfolio project.
type Project struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Details string `json:"details,omitempty"`
	Tech    string `json:"tech,omitempty"`
}

// SmalltalkIntent is a named bucket of trigger patterns and canned responses.
// Patterns are normalized at load time.
type SmalltalkIntent struct {
	Name      string   `json:"name"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// Base is the immutable knowledge handle threaded through the responder.
type Base struct {
	Profile Profile
	Intents []SmalltalkIntent
	Jokes   []string
	Memes   []string
}
