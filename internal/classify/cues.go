// Package classify picks topics and smalltalk intents for user input. The
// topic classifier scores input against a cue table with fuzzy similarity;
// the smalltalk matcher works by pattern containment with a fuzzy fallback.
package classify

// CueTable maps a topic label to its representative cue phrases. The label
// set is data, not code: callers may supply their own table, and every label
// present in the table is a candidate for classification.
type CueTable map[string][]string

// DefaultCues covers the career topics the profile resolver knows how to
// answer.
func DefaultCues() CueTable {
	return CueTable{
		"who":        {"who is chaitanya", "introduce chaitanya", "about chaitanya", "profile summary", "who is he"},
		"company":    {"current company", "present company", "which company", "employer", "working right now", "works at", "working at", "company chaitanya", "where does he work"},
		"education":  {"qualification", "qualifications", "education", "degree", "degrees", "studied", "study", "studies", "college"},
		"skills":     {"skills", "tech stack", "stack", "tools", "technology", "expertise", "proficient in"},
		"projects":   {"projects", "what projects", "project did", "work did he do", "what did he build", "recent work"},
		"experience": {"experience", "prior experience", "past experience", "previous role", "internship", "intern"},
		"eol":        {"eol", "stage 1", "stage 2", "imei", "failure reason", "testing dashboard"},
		"etl":        {"etl", "pipeline", "python etl", "refresh", "gateway", "automation", "daily refresh"},
		"finance":    {"finance", "q1", "april may", "financial summary", "performance dashboard"},
		"deployment": {"deploy", "deployment", "iframe", "website", "embed", "publish"},
		"fullname":   {"full name", "complete name", "name please"},
	}
}
