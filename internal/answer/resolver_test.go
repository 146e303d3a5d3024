package answer

import (
	"strings"
	"testing"

	"github.com/ckkulkarni/tatvam/internal/knowledge"
)

func fullProfile() knowledge.Profile {
	return knowledge.Profile{
		Name:    "Chaitanyachidambar Kulkarni",
		Summary: "Junior Software Engineer",
		About:   []string{"Builds dashboards.", "Automates reporting."},
		Experience: []knowledge.ExperienceEntry{
			{Company: "Acme Analytics", Title: "Junior Software Engineer", Duration: "2023-present"},
			{Company: "Beta Corp", Title: "Intern", Duration: "2022"},
		},
		Education: []knowledge.EducationEntry{
			{Degree: "B.Com", Institute: "XYZ College", Date: "2019"},
			{Course: "Data Science Specialization", Institute: "Online Academy", Date: "2021"},
		},
		TechnicalSkills: map[string][]string{
			"databases":          {"MySQL", "SQLite"},
			"data_visualization": {"Power BI"},
		},
		Projects: []knowledge.Project{
			{Name: "P1", Purpose: "one"}, {Name: "P2", Purpose: "two"},
			{Name: "P3", Purpose: "three"}, {Name: "P4", Purpose: "four"},
			{Name: "P5", Purpose: "five"}, {Name: "P6", Purpose: "six"},
			{Name: "P7", Purpose: "seven"}, {Name: "P8", Purpose: "eight"},
		},
	}
}

func TestResolveEducationFormatting(t *testing.T) {
	r := NewResolver(fullProfile(), 0)

	got, ok := r.Resolve("education", false)
	if !ok {
		t.Fatal("education not resolved")
	}
	if !strings.Contains(got, "B.Com — XYZ College (2019)") {
		t.Errorf("missing degree line in %q", got)
	}
	if !strings.Contains(got, "Data Science Specialization — Online Academy (2021)") {
		t.Errorf("missing course line in %q", got)
	}
}

func TestResolveCompany(t *testing.T) {
	r := NewResolver(fullProfile(), 0)

	got, _ := r.Resolve("company", false)
	if !strings.Contains(got, "Acme Analytics") || !strings.Contains(got, "2023-present") {
		t.Errorf("company answer %q missing first experience entry", got)
	}
	if strings.Contains(got, "Beta Corp") {
		t.Errorf("company answer %q used a non-first entry", got)
	}
}

func TestResolveCompanyMissing(t *testing.T) {
	r := NewResolver(knowledge.Profile{}, 0)

	got, ok := r.Resolve("company", false)
	if !ok || got == "" {
		t.Fatalf("empty profile must still answer, got %q ok=%v", got, ok)
	}
	if got != "Company info not available." {
		t.Errorf("got %q, want the fixed placeholder", got)
	}
}

func TestResolveWho(t *testing.T) {
	r := NewResolver(fullProfile(), 0)

	got, _ := r.Resolve("who", false)
	if !strings.Contains(got, "Chaitanyachidambar is an electronic device") {
		t.Errorf("who answer %q lacks the misdirection opener", got)
	}
	if !strings.Contains(got, "Builds dashboards.") {
		t.Errorf("who answer %q lacks the about text", got)
	}
}

func TestResolveWhoNoDuplicateMisdirection(t *testing.T) {
	p := fullProfile()
	p.About = []string{"Chaitanyachidambar is an electronic device \U0001F61C Just kidding! Here you go:", "Real bio."}
	r := NewResolver(p, 0)

	got, _ := r.Resolve("who", false)
	if strings.Count(got, "is an electronic device") != 1 {
		t.Errorf("misdirection duplicated in %q", got)
	}
}

func TestResolveWhoFallbacks(t *testing.T) {
	r := NewResolver(knowledge.Profile{Name: "Chaitanya K", Summary: "Engineer."}, 0)
	got, _ := r.Resolve("who", false)
	if !strings.Contains(got, "Engineer.") {
		t.Errorf("who answer %q should fall back to summary", got)
	}

	r = NewResolver(knowledge.Profile{}, 0)
	got, _ = r.Resolve("who", false)
	if got == "" {
		t.Error("who answer empty for empty profile")
	}
}

func TestResolveSkills(t *testing.T) {
	r := NewResolver(fullProfile(), 0)

	got, _ := r.Resolve("skills", false)
	if !strings.Contains(got, "Databases: MySQL, SQLite") {
		t.Errorf("skills answer %q missing databases line", got)
	}
	if !strings.Contains(got, "Data Visualization: Power BI") {
		t.Errorf("skills answer %q missing title-cased category", got)
	}
}

func TestResolveProjectsLimit(t *testing.T) {
	r := NewResolver(fullProfile(), 0)

	got, _ := r.Resolve("projects", false)
	if strings.Contains(got, "P7") {
		t.Errorf("default answer %q exceeds the project limit", got)
	}

	expanded, _ := r.Resolve("projects", true)
	if !strings.Contains(expanded, "P7") || !strings.Contains(expanded, "P8") {
		t.Errorf("expanded answer %q should include later projects", expanded)
	}
}

func TestResolveExperience(t *testing.T) {
	r := NewResolver(fullProfile(), 0)

	got, _ := r.Resolve("experience", false)
	if !strings.Contains(got, "Junior Software Engineer — Acme Analytics (2023-present)") {
		t.Errorf("experience answer %q misformatted", got)
	}
	if !strings.Contains(got, "Intern — Beta Corp (2022)") {
		t.Errorf("experience answer %q missing second entry", got)
	}
}

func TestResolveCannedTopics(t *testing.T) {
	r := NewResolver(knowledge.Profile{}, 0)

	for _, topic := range []string{"eol", "etl", "finance", "deployment"} {
		got, ok := r.Resolve(topic, false)
		if !ok || got == "" {
			t.Errorf("canned topic %q not resolved: %q", topic, got)
		}
	}
}

func TestResolveUnknownTopic(t *testing.T) {
	r := NewResolver(fullProfile(), 0)

	if got, ok := r.Resolve("horoscope", false); ok {
		t.Errorf("unknown topic resolved to %q", got)
	}
}

func TestResolveFullName(t *testing.T) {
	r := NewResolver(fullProfile(), 0)
	got, _ := r.Resolve("fullname", false)
	if got != "Chaitanyachidambar Kulkarni" {
		t.Errorf("fullname = %q", got)
	}

	r = NewResolver(knowledge.Profile{}, 0)
	got, _ = r.Resolve("fullname", false)
	if got == "" {
		t.Error("fullname empty for empty profile")
	}
}
