// Package answer renders natural-language replies for career topics from the
// profile record. Every recognized topic yields a non-empty reply even when
// the underlying data is missing; absent fields degrade to placeholder text.
package answer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ckkulkarni/tatvam/internal/knowledge"
	"github.com/ckkulkarni/tatvam/internal/match"
)

// DefaultProjectLimit bounds the projects list in a normal answer;
// ExpandedProjectLimit applies when the user asks to continue.
const (
	DefaultProjectLimit  = 6
	ExpandedProjectLimit = 10
)

const fallbackSummary = "Junior Software Engineer (Power BI, MySQL, Python ETL)."

// Resolver formats answers for topic labels out of a profile record.
type Resolver struct {
	profile      knowledge.Profile
	projectLimit int
}

// NewResolver builds a Resolver. A projectLimit of 0 selects
// DefaultProjectLimit.
func NewResolver(profile knowledge.Profile, projectLimit int) *Resolver {
	if projectLimit <= 0 {
		projectLimit = DefaultProjectLimit
	}
	return &Resolver{profile: profile, projectLimit: projectLimit}
}

// Resolve renders the answer for a topic label. expanded raises the list
// limit for list-type topics (currently projects). ok is false only for a
// label the resolver does not recognize; recognized labels always produce a
// non-empty string.
func (r *Resolver) Resolve(topic string, expanded bool) (string, bool) {
	switch topic {
	case "who":
		return r.who(), true
	case "company":
		return r.company(), true
	case "education":
		return r.education(), true
	case "skills":
		return r.skills(), true
	case "projects":
		limit := r.projectLimit
		if expanded {
			limit = ExpandedProjectLimit
		}
		return r.projects(limit), true
	case "experience":
		return r.experience(), true
	case "fullname":
		return r.fullName(), true
	case "eol", "etl", "finance", "deployment":
		return cannedTopics[topic], true
	}
	return "", false
}

// who leads with a fixed playful misdirection and follows with the bio. When
// the about text already opens with the misdirection, it is not repeated.
func (r *Resolver) who() string {
	opener := fmt.Sprintf("%s is an electronic device", r.firstName())
	misdirection := opener + " \U0001F61C Just kidding! Here you go:\n"
	if len(r.profile.About) > 0 {
		bio := strings.Join(r.profile.About, "\n")
		if strings.HasPrefix(bio, opener) {
			return bio
		}
		return misdirection + bio
	}
	if r.profile.Summary != "" {
		return misdirection + r.profile.Summary
	}
	return misdirection + fallbackSummary
}

func (r *Resolver) company() string {
	if len(r.profile.Experience) == 0 {
		return "Company info not available."
	}
	e := r.profile.Experience[0] // most recent by construction of the data
	return fmt.Sprintf("Current company: %s — role: %s (%s).", e.Company, e.Title, e.Duration)
}

func (r *Resolver) education() string {
	ed := r.profile.Education
	if len(ed) == 0 {
		return "Education: Bachelor of Commerce + Data Analyst/Data Science specializations."
	}
	rows := make([]string, len(ed))
	for i, e := range ed {
		qualification := e.Degree
		if qualification == "" {
			qualification = e.Course
		}
		rows[i] = fmt.Sprintf("%s — %s (%s)", qualification, e.Institute, e.Date)
	}
	return "Education:\n- " + strings.Join(rows, "\n- ")
}

func (r *Resolver) skills() string {
	ts := r.profile.TechnicalSkills
	if len(ts) == 0 {
		return "Skills not available."
	}
	categories := make([]string, 0, len(ts))
	for c := range ts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	lines := make([]string, len(categories))
	for i, c := range categories {
		lines[i] = fmt.Sprintf("%s: %s", match.Title(c), strings.Join(ts[c], ", "))
	}
	return "Skills:\n- " + strings.Join(lines, "\n- ")
}

func (r *Resolver) projects(limit int) string {
	ps := r.profile.Projects
	if len(ps) == 0 {
		return "Projects: See profile."
	}
	if len(ps) > limit {
		ps = ps[:limit]
	}
	lines := make([]string, len(ps))
	for i, p := range ps {
		lines[i] = fmt.Sprintf("- %s: %s", p.Name, p.Purpose)
	}
	return "Projects:\n" + strings.Join(lines, "\n")
}

func (r *Resolver) experience() string {
	ex := r.profile.Experience
	if len(ex) == 0 {
		return "Experience info not available."
	}
	lines := make([]string, len(ex))
	for i, e := range ex {
		lines[i] = fmt.Sprintf("%s — %s (%s)", e.Title, e.Company, e.Duration)
	}
	return strings.Join(lines, "\n")
}

func (r *Resolver) fullName() string {
	if r.profile.Name == "" {
		return "Name not available."
	}
	return r.profile.Name
}

func (r *Resolver) firstName() string {
	fields := strings.Fields(r.profile.Name)
	if len(fields) == 0 {
		return "He"
	}
	return fields[0]
}
