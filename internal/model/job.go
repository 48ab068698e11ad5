package model

import "errors"

// Job statuses. Stored values are always the English literals; Spanish
// display labels live in StatusLabel.
const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
)

// Job is a job posting. Jobs are held in memory only and reset to seed
// data on every start; candidates are the persisted side of the model.
type Job struct {
	ID           string          `json:"id"`
	Title        LocalizedText   `json:"title"`
	Department   LocalizedText   `json:"department"`
	Location     LocalizedText   `json:"location"`
	Salary       string          `json:"salary"`
	Description  LocalizedText   `json:"description"`
	Requirements []LocalizedText `json:"requirements"`
	Status       string          `json:"status"`
}

// JobInput carries the user-provided fields for a new job posting.
// Input arrives single-locale; the store replicates it into both
// locales so stored jobs always carry the uniform representation.
type JobInput struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// Validate checks the presence rules enforced at the store boundary.
func (in JobInput) Validate() error {
	switch {
	case in.Title == "":
		return errors.New("title is required")
	case in.Department == "":
		return errors.New("department is required")
	case in.Location == "":
		return errors.New("location is required")
	case in.Description == "":
		return errors.New("description is required")
	case len(in.Requirements) == 0:
		return errors.New("at least one requirement is required")
	}
	for _, r := range in.Requirements {
		if r == "" {
			return errors.New("requirements must not be empty")
		}
	}
	return nil
}
