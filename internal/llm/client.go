// Package llm provides the conversation gateway to the language model.
package llm

import (
	"context"
	"fmt"
)

// FunctionCall is the model's structured request to invoke one action kind.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// Reply is the model's response to one turn: free text, zero or more
// requested function calls, or both.
type Reply struct {
	Text          string
	FunctionCalls []FunctionCall
}

// Session is one stateful conversation handle. It carries the system
// instruction and tool catalog; all turns for a session pass through the
// same handle so the model's context accumulates correctly. Turns must be
// submitted strictly sequentially — a Session is not safe for concurrent
// use.
type Session interface {
	// SendUserTurn appends a user turn and returns the model's reply.
	SendUserTurn(ctx context.Context, text string) (*Reply, error)

	// SendFunctionResult appends the outcome of a previously requested
	// function call and returns the model's next reply. The reply text may
	// be empty if the model chooses not to respond in prose.
	SendFunctionResult(ctx context.Context, call FunctionCall, result any) (*Reply, error)
}

// Client creates conversation sessions against a model provider.
type Client interface {
	// StartSession creates one stateful handle preloaded with the fixed
	// system instruction and tool catalog.
	StartSession(ctx context.Context) (Session, error)
}

// ModelCommunicationError is a transport or provider failure talking to the
// language model. Not retried automatically.
type ModelCommunicationError struct {
	Op  string
	Err error
}

func (e *ModelCommunicationError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *ModelCommunicationError) Unwrap() error { return e.Err }
