package model

import "time"

// Candidate statuses. The set is closed but transitions are not
// restricted: HR can move a candidate from any status to any other,
// except that scheduling an interview always forces StatusInterview.
const (
	StatusApplied   = "Applied"
	StatusReviewing = "Reviewing"
	StatusInterview = "Interview"
	StatusFinalist  = "Finalist"
	StatusHired     = "Hired"
	StatusRejected  = "Rejected"
)

// CandidateStatuses lists every valid candidate status.
var CandidateStatuses = []string{
	StatusApplied,
	StatusReviewing,
	StatusInterview,
	StatusFinalist,
	StatusHired,
	StatusRejected,
}

// ValidCandidateStatus reports whether s is one of the closed set.
func ValidCandidateStatus(s string) bool {
	for _, v := range CandidateStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Interview modes.
const (
	InterviewVirtual = "Virtual"
	InterviewOnSite  = "OnSite"
)

// ValidInterviewMode reports whether m is a known interview mode.
func ValidInterviewMode(m string) bool {
	return m == InterviewVirtual || m == InterviewOnSite
}

// Experience is a single work-history entry of a parsed CV.
type Experience struct {
	Title       LocalizedText `json:"title"`
	Company     string        `json:"company"`
	Duration    LocalizedText `json:"duration"`
	Description LocalizedText `json:"description"`
}

// Education is a single education entry of a parsed CV.
type Education struct {
	Institution string        `json:"institution"`
	Degree      LocalizedText `json:"degree"`
	Year        string        `json:"year"`
}

// Rating is the parser's coarse 1-5 first impression of a CV.
type Rating struct {
	Score   int           `json:"score"`
	Comment LocalizedText `json:"comment"`
}

// ParsedProfile is the structured profile the CV parser extracts from
// raw CV text. The model is not a trusted source: the parser defaults
// missing fields before a profile ever reaches the store.
type ParsedProfile struct {
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	DNI        string        `json:"dni,omitempty"`
	Gender     string        `json:"gender,omitempty"`
	Summary    LocalizedText `json:"summary"`
	Experience []Experience  `json:"experience"`
	Education  []Education   `json:"education"`
	Skills     []string      `json:"skills"`
	Rating     *Rating       `json:"rating,omitempty"`
}

// HasContent reports whether the profile carries any identifying data.
// Used by the storage shape check on load.
func (p ParsedProfile) HasContent() bool {
	return p.Name != "" || p.Email != "" || !p.Summary.IsZero()
}

// MatchAnalysis is the AI-produced fit evaluation of a candidate
// against the job they applied to. Produced once per candidate and
// immutable afterwards; there is no re-ranking operation.
type MatchAnalysis struct {
	Score      int             `json:"score"`
	Summary    LocalizedText   `json:"summary"`
	Strengths  []LocalizedText `json:"strengths"`
	Weaknesses []LocalizedText `json:"weaknesses"`
}

// Note is a recruiter note on a candidate, kept in both locales.
type Note = LocalizedText

// Candidate is an application to exactly one job, created only through
// AI intake (parse then rank) and never deleted.
type Candidate struct {
	ID            string         `json:"id"`
	JobID         string         `json:"job_id"`
	CVText        LocalizedText  `json:"cv_text"`
	ParsedData    ParsedProfile  `json:"parsed_data"`
	MatchAnalysis *MatchAnalysis `json:"match_analysis"`
	Status        string         `json:"status"`
	Notes         []Note         `json:"notes"`

	InterviewDate     *time.Time `json:"interview_date"`
	InterviewerName   *string    `json:"interviewer_name"`
	InterviewMode     *string    `json:"interview_mode"`
	InterviewLocation *string    `json:"interview_location"`

	AppliedDate time.Time `json:"applied_date"`
}

// MatchScore returns the analysis score, with a missing analysis
// sorting as zero.
func (c Candidate) MatchScore() int {
	if c.MatchAnalysis == nil {
		return 0
	}
	return c.MatchAnalysis.Score
}

// ValidShape is the minimal integrity check applied to every entry loaded
// from durable storage: a non-empty id, some parsed data, and a status.
func (c Candidate) ValidShape() bool {
	return c.ID != "" && c.Status != "" && c.ParsedData.HasContent()
}
