package model

// Spanish display labels for the canonical status literals. Stored
// values are always the English constants; translation happens only at
// the presentation boundary.
var statusLabelsES = map[string]string{
	JobStatusOpen:    "Abierta",
	JobStatusClosed:  "Cerrada",
	StatusApplied:    "Aplicado",
	StatusReviewing:  "En Revisión",
	StatusInterview:  "Entrevista",
	StatusFinalist:   "Finalista",
	StatusHired:      "Contratado",
	StatusRejected:   "Rechazado",
	InterviewVirtual: "Virtual",
	InterviewOnSite:  "Presencial",
}

// StatusLabel returns the display label for a canonical status or
// interview-mode literal in the requested locale. Unknown literals and
// non-Spanish locales fall through to the literal itself.
func StatusLabel(status, locale string) string {
	if locale == LocaleES {
		if label, ok := statusLabelsES[status]; ok {
			return label
		}
	}
	return status
}
