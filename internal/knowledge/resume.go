package knowledge

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const maxResumeLines = 12

// AttachResume fills the profile's About section from a resume PDF when the
// profile dataset did not supply one. A populated About always wins; the
// resume is a fallback source, not an override.
func (b *Base) AttachResume(path string) error {
	if len(b.Profile.About) > 0 {
		return nil
	}

	lines, err := readResumeLines(path)
	if err != nil {
		return err
	}
	b.Profile.About = lines
	return nil
}

func readResumeLines(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening resume %s: %w", path, err)
	}
	defer f.Close()

	text, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extracting resume text: %w", err)
	}
	raw, err := io.ReadAll(text)
	if err != nil {
		return nil, fmt.Errorf("reading resume text: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxResumeLines {
			break
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("resume %s contained no extractable text", path)
	}
	return lines, nil
}
