package classify

import (
	"strings"

	"github.com/ckkulkarni/tatvam/internal/knowledge"
	"github.com/ckkulkarni/tatvam/internal/match"
)

// DefaultSmalltalkThreshold gates the fuzzy fallback pass. It is tuned
// independently of the topic threshold: smalltalk phrasing is looser, so the
// bar sits a little lower.
const DefaultSmalltalkThreshold = 0.65

// SmalltalkMatcher finds a canned response for casual input. The primary pass
// is exact substring containment of a normalized pattern; when that finds
// nothing, a fuzzy pass over patterns and intent names runs at its own
// threshold.
type SmalltalkMatcher struct {
	intents   []knowledge.SmalltalkIntent
	threshold float64
	randFn    func(n int) int
}

// NewSmalltalkMatcher builds a matcher over pre-normalized intents. randFn
// picks an index in [0,n); tests inject a deterministic stub. A threshold of
// 0 selects DefaultSmalltalkThreshold.
func NewSmalltalkMatcher(intents []knowledge.SmalltalkIntent, threshold float64, randFn func(n int) int) *SmalltalkMatcher {
	if threshold <= 0 {
		threshold = DefaultSmalltalkThreshold
	}
	return &SmalltalkMatcher{intents: intents, threshold: threshold, randFn: randFn}
}

// Match returns a response for the normalized input, or ok=false when neither
// pass finds anything. When several intents hit on the containment pass, one
// is chosen at random, then one of its responses at random.
func (m *SmalltalkMatcher) Match(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	var hits []knowledge.SmalltalkIntent
	for _, it := range m.intents {
		for _, p := range it.Patterns {
			if strings.Contains(text, p) {
				hits = append(hits, it)
				break
			}
		}
	}
	if len(hits) > 0 {
		it := hits[m.randFn(len(hits))]
		return m.pickResponse(it)
	}

	return m.fuzzyMatch(text)
}

// fuzzyMatch scores every pattern and intent name against the input and
// accepts the best intent only above the smalltalk threshold.
func (m *SmalltalkMatcher) fuzzyMatch(text string) (string, bool) {
	var best *knowledge.SmalltalkIntent
	var bestScore float64

	for i := range m.intents {
		it := &m.intents[i]
		candidates := append([]string{it.Name}, it.Patterns...)
		for _, c := range candidates {
			if s := match.Similarity(text, c); s > bestScore {
				best, bestScore = it, s
			}
		}
	}

	if best == nil || bestScore < m.threshold {
		return "", false
	}
	return m.pickResponse(*best)
}

func (m *SmalltalkMatcher) pickResponse(it knowledge.SmalltalkIntent) (string, bool) {
	if len(it.Responses) == 0 {
		return "", false
	}
	return it.Responses[m.randFn(len(it.Responses))], true
}
