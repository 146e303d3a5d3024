package classify

import (
	"sort"

	"github.com/ckkulkarni/tatvam/internal/match"
)

// DefaultTopicThreshold is the minimum similarity score a topic must reach
// before the classifier commits to it. Below the bar the classifier reports
// no match rather than guessing.
const DefaultTopicThreshold = 0.70

// Classifier scores input against a cue table and returns the single best
// topic label, if any clears the confidence threshold.
type Classifier struct {
	labels    []string // sorted, for a deterministic scan order
	cues      CueTable
	threshold float64
}

// NewClassifier builds a Classifier over the given cue table. A threshold of
// 0 selects DefaultTopicThreshold.
func NewClassifier(cues CueTable, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultTopicThreshold
	}
	labels := make([]string, 0, len(cues))
	for label := range cues {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return &Classifier{labels: labels, cues: cues, threshold: threshold}
}

// Classify returns the best-scoring topic label for the normalized input.
// Ties break toward the label earliest in sorted order, so a fixed input
// always classifies the same way. ok is false when nothing clears the
// threshold, including for empty input.
func (c *Classifier) Classify(text string) (label string, score float64, ok bool) {
	if text == "" {
		return "", 0, false
	}

	var best string
	var bestScore float64
	for _, lbl := range c.labels {
		for _, cue := range c.cues[lbl] {
			if s := match.Similarity(text, cue); s > bestScore {
				best, bestScore = lbl, s
			}
		}
	}

	if bestScore < c.threshold {
		return "", bestScore, false
	}
	return best, bestScore, true
}
