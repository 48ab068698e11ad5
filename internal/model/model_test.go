package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPlain_replicatesBothLocales(t *testing.T) {
	text := FromPlain("Backend Engineer")

	assert.Equal(t, "Backend Engineer", text.EN)
	assert.Equal(t, "Backend Engineer", text.ES)
	assert.False(t, text.IsZero())
}

func TestLocalizedText_In(t *testing.T) {
	text := Bilingual("Open", "Abierta")

	assert.Equal(t, "Open", text.In(LocaleEN))
	assert.Equal(t, "Abierta", text.In(LocaleES))
	// anything unknown falls back to English
	assert.Equal(t, "Open", text.In("fr"))
}

func TestJobInput_Validate(t *testing.T) {
	valid := JobInput{
		Title:        "Backend Engineer",
		Department:   "Engineering",
		Location:     "Madrid",
		Description:  "Build the API",
		Requirements: []string{"Go"},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*JobInput)
	}{
		{"missing title", func(in *JobInput) { in.Title = "" }},
		{"missing department", func(in *JobInput) { in.Department = "" }},
		{"missing location", func(in *JobInput) { in.Location = "" }},
		{"missing description", func(in *JobInput) { in.Description = "" }},
		{"no requirements", func(in *JobInput) { in.Requirements = nil }},
		{"blank requirement", func(in *JobInput) { in.Requirements = []string{"Go", ""} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			assert.Error(t, in.Validate())
		})
	}
}

func TestValidCandidateStatus(t *testing.T) {
	for _, s := range CandidateStatuses {
		assert.True(t, ValidCandidateStatus(s), s)
	}
	assert.False(t, ValidCandidateStatus("Shortlisted"))
	assert.False(t, ValidCandidateStatus(""))
	// stored values are the English literals, not display labels
	assert.False(t, ValidCandidateStatus("Contratado"))
}

func TestValidInterviewMode(t *testing.T) {
	assert.True(t, ValidInterviewMode(InterviewVirtual))
	assert.True(t, ValidInterviewMode(InterviewOnSite))
	assert.False(t, ValidInterviewMode("Phone"))
}

func TestMatchScore_missingAnalysisIsZero(t *testing.T) {
	c := Candidate{}
	assert.Equal(t, 0, c.MatchScore())

	c.MatchAnalysis = &MatchAnalysis{Score: 88}
	assert.Equal(t, 88, c.MatchScore())
}

func TestValidShape(t *testing.T) {
	c := Candidate{
		ID:         "cand-x",
		Status:     StatusApplied,
		ParsedData: ParsedProfile{Name: "Vanesa Valtorta"},
	}
	assert.True(t, c.ValidShape())

	assert.False(t, Candidate{Status: StatusApplied, ParsedData: c.ParsedData}.ValidShape())
	assert.False(t, Candidate{ID: "cand-x", ParsedData: c.ParsedData}.ValidShape())
	assert.False(t, Candidate{ID: "cand-x", Status: StatusApplied}.ValidShape())

	// a summary alone counts as parsed content
	bySummary := Candidate{
		ID:         "cand-y",
		Status:     StatusReviewing,
		ParsedData: ParsedProfile{Summary: FromPlain("Frontend engineer")},
	}
	assert.True(t, bySummary.ValidShape())
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Contratado", StatusLabel(StatusHired, LocaleES))
	assert.Equal(t, "Abierta", StatusLabel(JobStatusOpen, LocaleES))
	assert.Equal(t, "Presencial", StatusLabel(InterviewOnSite, LocaleES))

	assert.Equal(t, StatusHired, StatusLabel(StatusHired, LocaleEN))
	assert.Equal(t, "SomethingElse", StatusLabel("SomethingElse", LocaleES))
}

func TestSeedData_shape(t *testing.T) {
	jobs := SeedJobs()
	assert.Len(t, jobs, 3)

	jobIDs := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		jobIDs[j.ID] = true
		assert.False(t, j.Title.IsZero())
		assert.NotEmpty(t, j.Requirements)
	}

	candidates := SeedCandidates()
	assert.Len(t, candidates, 5)
	for _, c := range candidates {
		assert.True(t, c.ValidShape(), c.ID)
		assert.True(t, jobIDs[c.JobID], "candidate %s references job %s", c.ID, c.JobID)
		assert.True(t, ValidCandidateStatus(c.Status), c.ID)
	}
}
