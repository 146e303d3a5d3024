package router

// State is the per-conversation memory. Only the last resolved topic is
// remembered; setting a new topic fully replaces the old one. State is
// mutated only on the request path of its own conversation, so it needs no
// locking.
type State struct {
	LastTopic string
}

// NewState returns an empty conversation state.
func NewState() *State {
	return &State{}
}
