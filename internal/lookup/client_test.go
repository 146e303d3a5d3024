package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, ddg, wikiSearch, wikiSummary http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	mux := http.NewServeMux()
	if ddg != nil {
		mux.HandleFunc("/ddg", ddg)
	}
	if wikiSearch != nil {
		mux.HandleFunc("/w/api.php", wikiSearch)
	}
	if wikiSummary != nil {
		mux.HandleFunc("/summary/", wikiSummary)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	opts = append(opts, WithBaseURLs(srv.URL+"/ddg", srv.URL+"/w/api.php", srv.URL+"/summary/"))
	return NewClient(opts...)
}

func TestSummaryFromAbstract(t *testing.T) {
	c := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "recursion" {
				t.Errorf("upstream query = %q, want cleaned %q", got, "recursion")
			}
			w.Write([]byte(`{"AbstractText":"Recursion is when a function calls itself."}`))
		},
		nil, nil)

	got, ok := c.Summary(context.Background(), "what is recursion please")
	if !ok {
		t.Fatal("expected a summary")
	}
	if got != "Recursion is when a function calls itself." {
		t.Fatalf("Summary = %q", got)
	}
}

func TestSummaryFromRelatedTopics(t *testing.T) {
	c := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"AbstractText":"","RelatedTopics":[{"Text":""},{"Text":"Go is a programming language."}]}`))
		},
		nil, nil)

	got, ok := c.Summary(context.Background(), "golang")
	if !ok || got != "Go is a programming language." {
		t.Fatalf("Summary = %q, %v", got, ok)
	}
}

func TestSummaryFallsBackToWikipedia(t *testing.T) {
	c := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`["turing",["Alan Turing"],[""],[""]]`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "Alan%20Turing") && !strings.HasSuffix(r.URL.Path, "Alan Turing") {
				t.Errorf("summary path = %q", r.URL.Path)
			}
			w.Write([]byte(`{"extract":"Alan Turing was an English mathematician."}`))
		})

	got, ok := c.Summary(context.Background(), "who is turing")
	if !ok || got != "Alan Turing was an English mathematician." {
		t.Fatalf("Summary = %q, %v", got, ok)
	}
}

func TestSummaryNoResult(t *testing.T) {
	c := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"AbstractText":""}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`["x",[],[],[]]`))
		},
		nil)

	if got, ok := c.Summary(context.Background(), "zzqq nonsense"); ok {
		t.Fatalf("expected no result, got %q", got)
	}
}

func TestSummaryEmptyAfterCleaning(t *testing.T) {
	c := NewClient(WithTimeout(time.Second))
	if _, ok := c.Summary(context.Background(), "what is"); ok {
		t.Fatal("filler-only query should never hit the network")
	}
}

func TestSummaryUsesCache(t *testing.T) {
	cache, err := OpenCache(":memory:", time.Hour)
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer cache.Close()

	var hits atomic.Int64
	c := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Write([]byte(`{"AbstractText":"Cached once."}`))
		},
		nil, nil, WithCache(cache))

	for i := 0; i < 3; i++ {
		got, ok := c.Summary(context.Background(), "what is caching")
		if !ok || got != "Cached once." {
			t.Fatalf("Summary #%d = %q, %v", i, got, ok)
		}
	}
	if hits.Load() != 1 {
		t.Fatalf("upstream hit %d times, want 1", hits.Load())
	}
}

func TestSummaryClampsLongAbstract(t *testing.T) {
	long := strings.Repeat("Sentence one is here. ", 60)
	c := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"AbstractText":"` + strings.TrimSpace(long) + `"}`))
		},
		nil, nil)

	got, ok := c.Summary(context.Background(), "verbosity")
	if !ok {
		t.Fatal("expected a summary")
	}
	if len([]rune(got)) > maxSummaryBytes+1 {
		t.Fatalf("summary not clamped: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("clamped summary should end with ellipsis, got %q", got[len(got)-20:])
	}
}
