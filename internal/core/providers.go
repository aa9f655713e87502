package core

import "context"

// Reasoner produces one chat completion for a constructed prompt.
type Reasoner interface {
	Chat(ctx context.Context, messages []Message) (Message, error)
}

// Recognizer kicks off the external face-lookup flow. The call is
// fire-and-forget from the caller's point of view; a returned error is
// logged and never affects transcript ingestion.
type Recognizer interface {
	Trigger(ctx context.Context) error
}
