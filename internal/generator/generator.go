// Package generator turns a natural-language prompt into website markup via a
// single call to the Gemini API.
package generator

import "context"

// Generator produces website markup from a prompt. Handlers depend on this
// interface so tests can stub the provider.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
