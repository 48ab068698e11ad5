// Package ai builds the prompts for CV parsing, candidate ranking and
// the HR assistant, and turns raw model output into domain types.
package ai

import (
	"context"
	"fmt"
)

// TextGenerator is the slice of the generation client the AI services
// need. Satisfied by *ollama.Client.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, system, user string) (string, error)
}

// ParseError wraps any failure during CV parsing: the endpoint call,
// JSON extraction, or an unusable payload.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse cv: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// RankError wraps any failure during candidate ranking.
type RankError struct {
	Err error
}

func (e *RankError) Error() string { return fmt.Sprintf("rank candidate: %v", e.Err) }
func (e *RankError) Unwrap() error { return e.Err }
