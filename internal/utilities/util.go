// Package utilities contains utility code shared across the package.
package utilities

// ErrorResponse is the JSON error envelope every handler returns.
type ErrorResponse struct {
	Error string `json:"error"`
}
