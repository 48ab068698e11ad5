// Package store is the single source of truth for jobs and candidates.
// It mediates every mutation, runs the AI intake pipeline, and is the
// only component that writes to durable storage.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IVANP37/TalentIA/internal/model"
)

// CandidatesKey is the durable-storage key holding the JSON snapshot
// of the whole candidate collection.
const CandidatesKey = "recruitmentCandidates"

// ErrJobNotFound is returned by AddCandidate when the referenced job
// does not exist.
var ErrJobNotFound = errors.New("job not found")

// CVParser extracts a structured profile from raw CV text.
// Satisfied by *ai.Parser.
type CVParser interface {
	Parse(ctx context.Context, cvText string) (model.ParsedProfile, error)
}

// Ranker evaluates a parsed profile against a job posting.
// Satisfied by *ai.Ranker.
type Ranker interface {
	Rank(ctx context.Context, job model.Job, profile model.ParsedProfile) (*model.MatchAnalysis, error)
}

// KV is the slice of the durable local store the recruitment store
// needs. Satisfied by *database.LocalStore.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Store holds the in-memory job and candidate collections. All access
// goes through its mutex; both collections are prepended-to, so reads
// see most-recent-first order.
type Store struct {
	mu         sync.Mutex
	jobs       []model.Job
	candidates []model.Candidate

	parser CVParser
	ranker Ranker
	kv     KV
	log    *zap.Logger

	// coarse intake state for the UI surface: one flag and one error
	// for the whole store, not per call. Overlapping intakes clobber
	// each other here; callers that need precision use the returned
	// error instead.
	loading bool
	lastErr error
}

// New builds a store seeded with the job catalog and with candidates
// restored from durable storage, falling back to seed candidates when
// the snapshot is missing, unreadable, or fails the shape check.
func New(kv KV, parser CVParser, ranker Ranker, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		jobs:       model.SeedJobs(),
		candidates: loadCandidates(kv, log),
		parser:     parser,
		ranker:     ranker,
		kv:         kv,
		log:        log,
	}
}

func loadCandidates(kv KV, log *zap.Logger) []model.Candidate {
	if kv == nil {
		return model.SeedCandidates()
	}

	data, ok, err := kv.Get(CandidatesKey)
	if err != nil {
		log.Warn("reading candidate snapshot failed, using seed data", zap.Error(err))
		return model.SeedCandidates()
	}
	if !ok {
		return model.SeedCandidates()
	}

	var candidates []model.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		log.Warn("candidate snapshot is corrupted, using seed data", zap.Error(err))
		return model.SeedCandidates()
	}
	for _, c := range candidates {
		if !c.ValidShape() {
			log.Warn("candidate snapshot failed shape check, using seed data",
				zap.String("candidate_id", c.ID))
			return model.SeedCandidates()
		}
	}
	return candidates
}

// persistLocked writes the full candidate collection through to
// durable storage. Failures are logged, never surfaced: persistence is
// fire-and-forget, the in-memory state stays authoritative.
func (s *Store) persistLocked() {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(s.candidates)
	if err != nil {
		s.log.Error("marshal candidate snapshot", zap.Error(err))
		return
	}
	if err := s.kv.Put(CandidatesKey, data); err != nil {
		s.log.Error("persist candidate snapshot", zap.Error(err))
	}
}

// Jobs returns the job collection, most recent first.
func (s *Store) Jobs() []model.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Job(nil), s.jobs...)
}

// Job returns the job with the given id.
func (s *Store) Job(id string) (model.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobLocked(id)
}

func (s *Store) jobLocked(id string) (model.Job, bool) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return model.Job{}, false
}

// Candidates returns the candidate collection, most recent first.
func (s *Store) Candidates() []model.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Candidate(nil), s.candidates...)
}

// Candidate returns the candidate with the given id.
func (s *Store) Candidate(id string) (model.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.candidates {
		if c.ID == id {
			return c, true
		}
	}
	return model.Candidate{}, false
}

// ListApplicants returns the candidates for jobID sorted by descending
// match score. A missing analysis sorts as score 0 and ties keep their
// prior relative order. An unknown job yields an empty slice, never an
// error: a dangling job reference simply has no applicants.
func (s *Store) ListApplicants(jobID string) []model.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	applicants := make([]model.Candidate, 0)
	for _, c := range s.candidates {
		if c.JobID == jobID {
			applicants = append(applicants, c)
		}
	}
	sort.SliceStable(applicants, func(i, j int) bool {
		return applicants[i].MatchScore() > applicants[j].MatchScore()
	})
	return applicants
}

// CreateJob validates the input, assigns a fresh id and Open status,
// and prepends the job to the collection. Jobs are not persisted.
func (s *Store) CreateJob(in model.JobInput) (model.Job, error) {
	if err := in.Validate(); err != nil {
		return model.Job{}, err
	}

	requirements := make([]model.LocalizedText, 0, len(in.Requirements))
	for _, r := range in.Requirements {
		requirements = append(requirements, model.FromPlain(r))
	}
	job := model.Job{
		ID:           "job-" + uuid.NewString(),
		Title:        model.FromPlain(in.Title),
		Department:   model.FromPlain(in.Department),
		Location:     model.FromPlain(in.Location),
		Salary:       in.Salary,
		Description:  model.FromPlain(in.Description),
		Requirements: requirements,
		Status:       model.JobStatusOpen,
	}

	s.mu.Lock()
	s.jobs = append([]model.Job{job}, s.jobs...)
	s.mu.Unlock()

	s.log.Info("job created", zap.String("job_id", job.ID))
	return job, nil
}

// AddCandidate runs the AI intake: resolve the job, parse the CV, rank
// the profile, then prepend and persist the completed candidate. Any
// failure aborts the whole operation with no partial state committed.
// The operation is not atomic against the external calls: both must
// succeed before an id is assigned.
func (s *Store) AddCandidate(ctx context.Context, jobID, cvText string) (model.Candidate, error) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	job, found := s.jobLocked(jobID)
	s.mu.Unlock()

	if !found {
		return model.Candidate{}, s.failIntake(ErrJobNotFound)
	}

	profile, err := s.parser.Parse(ctx, cvText)
	if err != nil {
		return model.Candidate{}, s.failIntake(err)
	}

	analysis, err := s.ranker.Rank(ctx, job, profile)
	if err != nil {
		return model.Candidate{}, s.failIntake(err)
	}

	candidate := model.Candidate{
		ID:            "cand-" + uuid.NewString(),
		JobID:         jobID,
		CVText:        model.FromPlain(cvText),
		ParsedData:    profile,
		MatchAnalysis: analysis,
		Status:        model.StatusApplied,
		Notes:         []model.Note{},
		AppliedDate:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.candidates = append([]model.Candidate{candidate}, s.candidates...)
	s.persistLocked()
	s.loading = false
	s.mu.Unlock()

	s.log.Info("candidate added",
		zap.String("candidate_id", candidate.ID),
		zap.String("job_id", jobID),
		zap.Int("score", candidate.MatchScore()),
	)
	return candidate, nil
}

func (s *Store) failIntake(err error) error {
	s.mu.Lock()
	s.loading = false
	s.lastErr = err
	s.mu.Unlock()
	s.log.Warn("candidate intake failed", zap.Error(err))
	return err
}

// Loading reports whether an intake is in flight. Coarse by design:
// one boolean for the whole store.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the error of the most recent failed intake, or nil
// after a successful one.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// UpdateCandidateStatus replaces the candidate's status in place and
// reports whether the candidate existed. Any status from the closed
// set is accepted from any prior status; an unknown id is a no-op.
func (s *Store) UpdateCandidateStatus(candidateID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.candidates {
		if s.candidates[i].ID == candidateID {
			s.candidates[i].Status = status
			s.persistLocked()
			return true
		}
	}
	return false
}

// AddNote appends a note to the candidate and reports whether the
// candidate existed.
func (s *Store) AddNote(candidateID string, note model.Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.candidates {
		if s.candidates[i].ID == candidateID {
			s.candidates[i].Notes = append(s.candidates[i].Notes, note)
			s.persistLocked()
			return true
		}
	}
	return false
}

// ScheduleInterview sets all four interview fields and forces the
// status to Interview regardless of the current status, even Hired or
// Rejected. Reports whether the candidate existed.
func (s *Store) ScheduleInterview(candidateID string, when time.Time, interviewer, mode, location string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.candidates {
		if s.candidates[i].ID == candidateID {
			s.candidates[i].InterviewDate = &when
			s.candidates[i].InterviewerName = &interviewer
			s.candidates[i].InterviewMode = &mode
			s.candidates[i].InterviewLocation = &location
			s.candidates[i].Status = model.StatusInterview
			s.persistLocked()
			return true
		}
	}
	return false
}
