package ollama

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSONFound means the model output contained no brace-delimited
// region to parse.
var ErrNoJSONFound = errors.New("no JSON object found in model output")

// ParseError means a brace-delimited region was found but could not be
// parsed, even after stripping a code fence. Attempted carries the
// substring that failed, for diagnostics.
type ParseError struct {
	Attempted string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse JSON from model output: %v (attempted: %q)", e.Err, e.Attempted)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractJSON isolates the single JSON object expected somewhere in
// free-form model output and unmarshals it into v.
//
// The heuristic is intentionally simple: take everything between the
// first '{' and the last '}'. It will misfire when the outermost
// braces belong to a string value, or when the output holds several
// objects; callers constrain the prompt ("return ONLY the JSON") to
// keep that from happening.
func ExtractJSON(text string, v any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || start > end {
		return ErrNoJSONFound
	}

	candidate := text[start : end+1]
	if err := json.Unmarshal([]byte(candidate), v); err == nil {
		return nil
	}

	// one retry after stripping a leading/trailing ```json fence
	cleaned := strings.TrimSpace(candidate)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &ParseError{Attempted: cleaned, Err: err}
	}
	return nil
}
