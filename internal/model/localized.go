// Package model contains the domain types for jobs, candidates and
// their AI-produced analysis, plus the seed data the store falls back
// to when durable storage is empty or unreadable.
package model

// Supported locale codes.
const (
	LocaleEN = "en"
	LocaleES = "es"
)

// LocalizedText holds the same piece of content in both supported
// locales. Every user-visible text field on jobs and candidates is a
// LocalizedText; plain input is replicated into both locales at the
// creation boundary so the stored representation is always uniform.
type LocalizedText struct {
	EN string `json:"en"`
	ES string `json:"es"`
}

// Bilingual builds a LocalizedText from per-locale values.
func Bilingual(en, es string) LocalizedText {
	return LocalizedText{EN: en, ES: es}
}

// FromPlain replicates a single-locale value into both locales.
func FromPlain(s string) LocalizedText {
	return LocalizedText{EN: s, ES: s}
}

// In returns the content for the requested locale, defaulting to
// English for anything that is not "es".
func (t LocalizedText) In(locale string) string {
	if locale == LocaleES {
		return t.ES
	}
	return t.EN
}

// IsZero reports whether both locales are empty.
func (t LocalizedText) IsZero() bool {
	return t.EN == "" && t.ES == ""
}
