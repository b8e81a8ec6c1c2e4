package comm

import "github.com/itchio/headway/state"

// NewStateConsumer returns a state.Consumer that prints directly to the
// console via comm's logging functions.
func NewStateConsumer() *state.Consumer {
	return &state.Consumer{
		OnProgress:       Progress,
		OnProgressLabel:  ProgressLabel,
		OnPauseProgress:  PauseProgress,
		OnResumeProgress: ResumeProgress,
		OnMessage:        Logl,
	}
}

// NewPrefixedConsumer is like NewStateConsumer but tags every message,
// e.g. "[router]".
func NewPrefixedConsumer(prefix string) *state.Consumer {
	c := NewStateConsumer()
	c.OnMessage = func(level, msg string) {
		Logl(level, prefix+" "+msg)
	}
	return c
}
