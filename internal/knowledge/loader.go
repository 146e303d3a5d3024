package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ckkulkarni/tatvam/internal/match"
)

const maxDatasetSize = 5 << 20 // 5MB

// excludedIntents are smalltalk bucket names reserved for the dedicated joke
// and meme lists. Intents with these names are dropped at load time so the
// same category can never answer through both paths.
var excludedIntents = map[string]struct{}{
	"jokes_tech":        {},
	"jokes_general":     {},
	"memes_indian":      {},
	"memes_english":     {},
	"memes_tatvam_self": {},
}

// Sources names the four dataset locations. Each may be a local file path or
// an http(s) URL. Empty locations are skipped.
type Sources struct {
	Profile   string
	Smalltalk string
	Jokes     string
	Memes     string
}

// smalltalkFile mirrors the smalltalk dataset shape on disk.
type smalltalkFile struct {
	Intents []SmalltalkIntent `json:"intents"`
}

type jokesFile struct {
	Jokes []string `json:"jokes"`
}

type memesFile struct {
	Memes []string `json:"memes"`
}

// Load fetches the four datasets concurrently and assembles a Base. A dataset
// that is missing or malformed degrades to its zero value with a warning; the
// responder can still answer from whatever did load. Load returns an error
// only when every configured source failed, since the responder is useless
// with no data at all.
func Load(ctx context.Context, src Sources) (*Base, error) {
	base := &Base{}

	// Each goroutine owns exactly one slot; errors are tallied after Wait.
	errs := make([]error, 4)
	names := [4]string{"profile", "smalltalk", "jokes", "memes"}

	var g errgroup.Group
	configured := 0
	if src.Profile != "" {
		configured++
		g.Go(func() error {
			var p Profile
			errs[0] = fetchJSON(ctx, src.Profile, &p)
			base.Profile = p
			return nil
		})
	}
	if src.Smalltalk != "" {
		configured++
		g.Go(func() error {
			var f smalltalkFile
			errs[1] = fetchJSON(ctx, src.Smalltalk, &f)
			base.Intents = prepareIntents(f.Intents)
			return nil
		})
	}
	if src.Jokes != "" {
		configured++
		g.Go(func() error {
			var f jokesFile
			errs[2] = fetchJSON(ctx, src.Jokes, &f)
			base.Jokes = f.Jokes
			return nil
		})
	}
	if src.Memes != "" {
		configured++
		g.Go(func() error {
			var f memesFile
			errs[3] = fetchJSON(ctx, src.Memes, &f)
			base.Memes = f.Memes
			return nil
		})
	}
	g.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			slog.Warn("dataset unavailable", "dataset", names[i], "error", err)
		}
	}
	if configured > 0 && failed == configured {
		return nil, fmt.Errorf("no knowledge dataset could be loaded (%d sources failed)", failed)
	}
	return base, nil
}

// prepareIntents drops excluded buckets and normalizes every pattern so the
// matcher can compare by plain substring containment.
func prepareIntents(intents []SmalltalkIntent) []SmalltalkIntent {
	out := make([]SmalltalkIntent, 0, len(intents))
	for _, it := range intents {
		if _, skip := excludedIntents[it.Name]; skip {
			continue
		}
		patterns := make([]string, 0, len(it.Patterns))
		for _, p := range it.Patterns {
			if n := match.Normalize(p); n != "" {
				patterns = append(patterns, n)
			}
		}
		out = append(out, SmalltalkIntent{
			Name:      it.Name,
			Patterns:  patterns,
			Responses: it.Responses,
		})
	}
	return out
}

func fetchJSON(ctx context.Context, location string, v any) error {
	data, err := fetch(ctx, location)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", location, err)
	}
	return nil
}

func fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return fetchURL(ctx, location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}
	return data, nil
}

func fetchURL(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDatasetSize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return data, nil
}
