package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IVANP37/TalentIA/internal/ai"
	"github.com/IVANP37/TalentIA/internal/model"
	"github.com/IVANP37/TalentIA/internal/store"
	"github.com/IVANP37/TalentIA/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type stubParser struct {
	profile model.ParsedProfile
	err     error
}

func (p *stubParser) Parse(_ context.Context, _ string) (model.ParsedProfile, error) {
	return p.profile, p.err
}

type stubRanker struct {
	analysis *model.MatchAnalysis
	err      error
}

func (r *stubRanker) Rank(_ context.Context, _ model.Job, _ model.ParsedProfile) (*model.MatchAnalysis, error) {
	return r.analysis, r.err
}

type stubGenerator struct {
	chatOut string
	chatErr error
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return "", errors.New("not used")
}

func (g *stubGenerator) Chat(_ context.Context, _, _ string) (string, error) {
	return g.chatOut, g.chatErr
}

func okParser() *stubParser {
	return &stubParser{profile: model.ParsedProfile{
		Name:       "Lucia Fernandez",
		Email:      "lucia@example.com",
		Summary:    model.FromPlain("Frontend engineer"),
		Experience: []model.Experience{},
		Education:  []model.Education{},
		Skills:     []string{"React", "TypeScript"},
	}}
}

func okRanker() *stubRanker {
	return &stubRanker{analysis: &model.MatchAnalysis{
		Score:      80,
		Summary:    model.FromPlain("Good fit"),
		Strengths:  []model.LocalizedText{model.FromPlain("React")},
		Weaknesses: []model.LocalizedText{},
	}}
}

// newTestRouter mirrors the route table from the server package over a
// freshly seeded store. No KV, so every run starts from seed data.
func newTestRouter(parser store.CVParser, ranker store.Ranker, gen ai.TextGenerator) (*gin.Engine, *store.Store) {
	s := store.New(nil, parser, ranker, nil)
	rc := NewRecruitmentController(s, ai.NewAssistant(gen, nil), nil)

	r := gin.Default()
	r.GET("/jobs", rc.GetJobs)
	r.POST("/jobs", rc.CreateJobHandler)
	r.GET("/jobs/:id", rc.GetJobByID)
	r.GET("/jobs/:id/applicants", rc.GetApplicants)
	r.POST("/jobs/:id/applications", rc.ApplyHandler)
	r.GET("/candidates", rc.GetCandidates)
	r.GET("/candidates/:id", rc.GetCandidateByID)
	r.PATCH("/candidates/:id/status", rc.UpdateStatusHandler)
	r.POST("/candidates/:id/notes", rc.AddNoteHandler)
	r.POST("/candidates/:id/interview", rc.ScheduleInterviewHandler)
	r.POST("/assistant", rc.AskAssistant)
	r.GET("/stats", rc.GetStats)
	return r, s
}

func decodeList(t *testing.T, body []byte) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &list))
	return list
}

func TestGetJobs_seeded(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, _ := testutil.MakeJSONRequest(nil, r, "/jobs", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	jobs := decodeList(t, rec.Body.Bytes())
	require.Len(t, jobs, 3)
	assert.Equal(t, "job-1", jobs[0]["id"])
}

func TestGetJobByID_success(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, resp := testutil.MakeJSONRequest(nil, r, "/jobs/job-2", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "job-2", resp["id"])
	assert.Equal(t, model.JobStatusClosed, resp["status"])
}

func TestGetJobByID_notFound(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, resp := testutil.MakeJSONRequest(nil, r, "/jobs/job-999", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestCreateJob_success(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{
		"title":        "Backend Engineer",
		"department":   "Engineering",
		"location":     "Madrid",
		"salary":       "55000",
		"description":  "Build the API",
		"requirements": []string{"Go", "SQL"},
	}
	rec, resp := testutil.MakeJSONRequest(body, r, "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, resp["id"], "job-")
	assert.Equal(t, model.JobStatusOpen, resp["status"])

	title, ok := resp["title"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Backend Engineer", title["en"])
	assert.Equal(t, "Backend Engineer", title["es"])

	listRec, _ := testutil.MakeJSONRequest(nil, r, "/jobs", http.MethodGet)
	jobs := decodeList(t, listRec.Body.Bytes())
	require.Len(t, jobs, 4)
	assert.Equal(t, resp["id"], jobs[0]["id"])
}

func TestCreateJob_missingFields(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{"title": "Backend Engineer"}
	rec, resp := testutil.MakeJSONRequest(body, r, "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, resp["error"])
}

func TestGetApplicants_sortedByScore(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, _ := testutil.MakeJSONRequest(nil, r, "/jobs/job-1/applicants", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	applicants := decodeList(t, rec.Body.Bytes())
	require.NotEmpty(t, applicants)
	prev := 101.0
	for _, a := range applicants {
		assert.Equal(t, "job-1", a["job_id"])
		analysis, ok := a["match_analysis"].(map[string]interface{})
		require.True(t, ok)
		score := analysis["score"].(float64)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestGetApplicants_unknownJobIsEmptyList(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, _ := testutil.MakeJSONRequest(nil, r, "/jobs/job-999/applicants", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetCandidates_seeded(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, _ := testutil.MakeJSONRequest(nil, r, "/candidates", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	candidates := decodeList(t, rec.Body.Bytes())
	assert.Len(t, candidates, 5)
}

func TestGetCandidateByID_notFound(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, resp := testutil.MakeJSONRequest(nil, r, "/candidates/cand-999", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Candidate not found", resp["error"])
}

func TestApply_success(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{"cv_text": "Lucia Fernandez, frontend engineer, 6 years of React."}
	rec, resp := testutil.MakeJSONRequest(body, r, "/jobs/job-1/applications", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, resp["id"], "cand-")
	assert.Equal(t, "job-1", resp["job_id"])
	assert.Equal(t, model.StatusApplied, resp["status"])

	parsed, ok := resp["parsed_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Lucia Fernandez", parsed["name"])

	analysis, ok := resp["match_analysis"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(80), analysis["score"])
}

func TestApply_unknownJob(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{"cv_text": "some cv"}
	rec, resp := testutil.MakeJSONRequest(body, r, "/jobs/job-999/applications", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestApply_emptyCVText(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, resp := testutil.MakeJSONRequest(gin.H{}, r, "/jobs/job-1/applications", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "cv_text is required", resp["error"])
}

func TestApply_parserFailureIsBadGateway(t *testing.T) {
	parser := &stubParser{err: &ai.ParseError{Err: errors.New("model returned prose")}}
	r, s := newTestRouter(parser, okRanker(), &stubGenerator{})

	body := gin.H{"cv_text": "some cv"}
	rec, resp := testutil.MakeJSONRequest(body, r, "/jobs/job-1/applications", http.MethodPost)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, resp["error"], "Failed to process candidate")
	assert.Len(t, s.Candidates(), 5)
}

func TestUpdateStatus_success(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{"status": model.StatusHired}
	rec, resp := testutil.MakeJSONRequest(body, r, "/candidates/cand-2/status", http.MethodPatch)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cand-2", resp["id"])
	assert.Equal(t, model.StatusHired, resp["status"])
}

func TestUpdateStatus_unknownStatus(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{"status": "Shortlisted"}
	rec, resp := testutil.MakeJSONRequest(body, r, "/candidates/cand-2/status", http.MethodPatch)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Shortlisted")
}

func TestUpdateStatus_unknownCandidate(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{"status": model.StatusHired}
	rec, _ := testutil.MakeJSONRequest(body, r, "/candidates/cand-999/status", http.MethodPatch)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddNote_fillsMissingLocale(t *testing.T) {
	r, s := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{"en": "Strong portfolio"}
	rec, _ := testutil.MakeJSONRequest(body, r, "/candidates/cand-1/notes", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	candidate, ok := s.Candidate("cand-1")
	require.True(t, ok)
	require.NotEmpty(t, candidate.Notes)
	last := candidate.Notes[len(candidate.Notes)-1]
	assert.Equal(t, "Strong portfolio", last.EN)
	assert.Equal(t, "Strong portfolio", last.ES)
}

func TestAddNote_empty(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, resp := testutil.MakeJSONRequest(gin.H{}, r, "/candidates/cand-1/notes", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Note must not be empty", resp["error"])
}

func TestScheduleInterview_forcesInterviewStatus(t *testing.T) {
	r, s := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	assert.True(t, s.UpdateCandidateStatus("cand-2", model.StatusHired))

	body := gin.H{
		"date":             "2026-09-15T10:00:00Z",
		"interviewer_name": "Marta Ruiz",
		"mode":             model.InterviewOnSite,
		"location":         "Office 3B",
	}
	rec, resp := testutil.MakeJSONRequest(body, r, "/candidates/cand-2/interview", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StatusInterview, resp["status"])
	assert.Equal(t, "Marta Ruiz", resp["interviewer_name"])

	candidate, ok := s.Candidate("cand-2")
	require.True(t, ok)
	require.NotNil(t, candidate.InterviewDate)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), candidate.InterviewDate.UTC())
}

func TestScheduleInterview_badDate(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{
		"date":             "next tuesday",
		"interviewer_name": "Marta Ruiz",
		"mode":             model.InterviewVirtual,
		"location":         "Meet",
	}
	rec, resp := testutil.MakeJSONRequest(body, r, "/candidates/cand-2/interview", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "RFC3339")
}

func TestScheduleInterview_badMode(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	body := gin.H{
		"date":             "2026-09-15T10:00:00Z",
		"interviewer_name": "Marta Ruiz",
		"mode":             "Phone",
		"location":         "Meet",
	}
	rec, resp := testutil.MakeJSONRequest(body, r, "/candidates/cand-2/interview", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Phone")
}

func TestAskAssistant_success(t *testing.T) {
	gen := &stubGenerator{chatOut: "There are two open positions."}
	r, _ := newTestRouter(okParser(), okRanker(), gen)

	body := gin.H{"question": "How many open positions are there?"}
	rec, resp := testutil.MakeJSONRequest(body, r, "/assistant", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "There are two open positions.", resp["answer"])
}

func TestAskAssistant_emptyQuestion(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, resp := testutil.MakeJSONRequest(gin.H{}, r, "/assistant", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "question is required", resp["error"])
}

func TestAskAssistant_upstreamFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{chatErr: errors.New("connection refused")}
	r, _ := newTestRouter(okParser(), okRanker(), gen)

	body := gin.H{"question": "Who is the best candidate?"}
	rec, resp := testutil.MakeJSONRequest(body, r, "/assistant", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ai.FallbackAnswer, resp["answer"])
}

func TestGetStats(t *testing.T) {
	r, _ := newTestRouter(okParser(), okRanker(), &stubGenerator{})

	rec, resp := testutil.MakeJSONRequest(nil, r, "/stats", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), resp["total_jobs"])
	assert.Equal(t, float64(2), resp["open_jobs"])
	assert.Equal(t, float64(5), resp["total_candidates"])
}
