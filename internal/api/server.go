// Package api exposes the responder over HTTP and MCP. The HTTP surface is
// deliberately small: a health probe, a chat endpoint, and a knowledge stats
// endpoint for the status command.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ckkulkarni/tatvam/internal/knowledge"
	"github.com/ckkulkarni/tatvam/internal/router"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Deps holds what the HTTP handlers need.
type Deps struct {
	Base      *knowledge.Base
	Responder *router.Responder
	Token     string // empty disables bearer auth
}

// NewHandler returns the chi router serving the chat API.
func NewHandler(deps Deps) http.Handler {
	sessions := newSessionRegistry()

	r := chi.NewRouter()
	r.Get("/health", handleHealth)

	r.Group(func(r chi.Router) {
		if deps.Token != "" {
			r.Use(bearerAuth(deps.Token))
		}
		r.Post("/chat", handleChat(deps, sessions))
		r.Get("/knowledge/stats", handleStats(deps))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// ChatRequest is a single user message. SessionID is optional; omitting it
// starts a fresh conversation and the response carries the new ID.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

// ChatResponse is the reply to one message. Greeting is set only on the first
// message of a session, so clients can show the opening line.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
	Reply     string `json:"reply"`
	Greeting  string `json:"greeting,omitempty"`
}

func handleChat(deps Deps, sessions *sessionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "message is required")
			return
		}

		sessionID, state, created := sessions.acquire(req.SessionID)
		defer sessions.release(sessionID)

		reply := deps.Responder.Respond(r.Context(), req.Message, state)

		resp := ChatResponse{
			SessionID: sessionID,
			MessageID: uuid.NewString(),
			Reply:     reply,
		}
		if created {
			resp.Greeting = router.Greeting
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func handleStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{
			"smalltalk_intents": len(deps.Base.Intents),
			"jokes":             len(deps.Base.Jokes),
			"memes":             len(deps.Base.Memes),
			"projects":          len(deps.Base.Profile.Projects),
		})
	}
}

// sessionRegistry maps session IDs to conversation state. Each session is
// locked while one of its messages is in flight, so state mutation stays on a
// single path per conversation even if a client double-submits.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu    sync.Mutex
	state *router.State
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*session)}
}

// acquire returns the session's state with its lock held, creating the
// session (and its ID) when needed. Callers must release the same ID.
func (r *sessionRegistry) acquire(id string) (string, *router.State, bool) {
	r.mu.Lock()
	if id == "" {
		id = uuid.NewString()
	}
	s, ok := r.sessions[id]
	if !ok {
		s = &session{state: router.NewState()}
		r.sessions[id] = s
	}
	r.mu.Unlock()

	s.mu.Lock()
	return id, s.state, !ok
}

func (r *sessionRegistry) release(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		s.mu.Unlock()
	}
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
