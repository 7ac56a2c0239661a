// Package llm abstracts the generative text backend. One prompt in, one
// completion out; a single failed attempt surfaces directly to the caller.
package llm

import "context"

type Engine interface {
	Name() string
	GetModel() string
	// Configured reports whether the engine has a usable credential.
	// Services check this before doing any prompt work.
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}
