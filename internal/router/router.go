// Package router owns the response decision tree: the fixed priority order
// that turns raw user text into a reply. The order is the core contract of
// the system. Rude input is defused before anything else; arithmetic is
// answered before keyword scans so "what's 2+2" can't be misread as a career
// question; explicit joke and meme requests beat smalltalk so a chatty
// pattern can't shadow them; career topics come next; then a continuation of
// the previous topic; then the web lookup; and finally a playful default.
package router

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/ckkulkarni/tatvam/internal/answer"
	"github.com/ckkulkarni/tatvam/internal/classify"
	"github.com/ckkulkarni/tatvam/internal/knowledge"
	"github.com/ckkulkarni/tatvam/internal/match"
	"github.com/ckkulkarni/tatvam/internal/mathexpr"
)

// Lookup is the external knowledge collaborator. ok=false means no result;
// the router treats failures and empty results identically.
type Lookup interface {
	Summary(ctx context.Context, query string) (string, bool)
}

var rudePhrases = []string{"shut up", "stop it", "be quiet", "chup", "band kar", "chup kar"}

const deEscalation = "Chill bhai \U0001F604 — jokes sunaoon ya projects bataoon?"

var continuationCues = []string{"continue", "more", "aur", "another one", "next"}

var fallbackLines = []string{
	"Bhai, ChatGPT nahi hu — itna funding nahi hai \U0001F605. Par jokes, memes, skills ya projects pucho, mast bataunga!",
	"Thoda lightweight AI hu \U0001F90F — par kaam ka hu. Pucho: jokes, memes, skills, projects, EOL.",
	"Confused ho gaya \U0001F605. 'joke', 'meme', 'skills', 'projects' ya 'EOL project' bol, turant reply dunga!",
}

const (
	noJokesLoaded = "No jokes loaded \U0001F605"
	noMemesLoaded = "No memes loaded \U0001F605"
)

// Greeting is the opening line a fresh conversation shows before any input.
const Greeting = "Hey there! \U0001F44B I'm TatTvam.\nAsk me about Chaitanya's work, projects, skills — or say \"tell me a joke\"."

// Options tunes a Responder. Zero values select defaults.
type Options struct {
	Cues               classify.CueTable
	TopicThreshold     float64
	SmalltalkThreshold float64
	ProjectLimit       int
	Lookup             Lookup        // nil disables the web fallback
	Rand               func(int) int // nil selects math/rand
}

// Responder resolves raw user text into replies. It is safe for use by one
// conversation at a time per State; distinct conversations may share a
// Responder because all per-conversation data lives in State.
type Responder struct {
	base      *knowledge.Base
	topics    *classify.Classifier
	smalltalk *classify.SmalltalkMatcher
	resolver  *answer.Resolver
	lookup    Lookup
	randFn    func(int) int
}

// New builds a Responder over a loaded knowledge base.
func New(base *knowledge.Base, opts Options) *Responder {
	randFn := opts.Rand
	if randFn == nil {
		randFn = rand.Intn
	}
	cues := opts.Cues
	if cues == nil {
		cues = classify.DefaultCues()
	}
	return &Responder{
		base:      base,
		topics:    classify.NewClassifier(cues, opts.TopicThreshold),
		smalltalk: classify.NewSmalltalkMatcher(base.Intents, opts.SmalltalkThreshold, randFn),
		resolver:  answer.NewResolver(base.Profile, opts.ProjectLimit),
		lookup:    opts.Lookup,
		randFn:    randFn,
	}
}

// Respond produces the reply for raw user text, updating state when a career
// topic resolves. It never returns an empty string and never lets a
// collaborator failure escape: the worst case is a line from the fallback
// set.
func (r *Responder) Respond(ctx context.Context, raw string, state *State) string {
	t := match.Normalize(raw)

	if match.ContainsAny(t, rudePhrases) {
		return deEscalation
	}

	if reply, ok := mathexpr.Answer(raw); ok {
		return reply
	}

	if strings.Contains(t, "joke") {
		return r.randomJoke()
	}
	if strings.Contains(t, "meme") {
		return r.randomMeme()
	}

	if reply, ok := r.smalltalk.Match(t); ok {
		return reply
	}

	if label, score, ok := r.topics.Classify(t); ok {
		slog.Debug("topic classified", "label", label, "score", score)
		reply, resolved := r.resolver.Resolve(label, false)
		if resolved {
			state.LastTopic = label
			return reply
		}
	}

	if state.LastTopic != "" && match.ContainsAny(t, continuationCues) {
		if reply, ok := r.resolver.Resolve(state.LastTopic, true); ok {
			return reply
		}
	}

	if r.lookup != nil {
		if summary, ok := r.lookup.Summary(ctx, raw); ok {
			return summary
		}
	}

	return fallbackLines[r.randFn(len(fallbackLines))]
}

func (r *Responder) randomJoke() string {
	if len(r.base.Jokes) == 0 {
		return noJokesLoaded
	}
	return r.base.Jokes[r.randFn(len(r.base.Jokes))]
}

func (r *Responder) randomMeme() string {
	if len(r.base.Memes) == 0 {
		return noMemesLoaded
	}
	return r.base.Memes[r.randFn(len(r.base.Memes))]
}
