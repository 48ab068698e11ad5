package store

import "github.com/IVANP37/TalentIA/internal/model"

// JobApplicants is the applicant count for a single job.
type JobApplicants struct {
	JobID      string              `json:"job_id"`
	Title      model.LocalizedText `json:"title"`
	Status     string              `json:"status"`
	Applicants int                 `json:"applicants"`
}

// Stats is the derived dashboard view: applicant counts per job and
// the candidate status distribution.
type Stats struct {
	TotalJobs       int             `json:"total_jobs"`
	OpenJobs        int             `json:"open_jobs"`
	TotalCandidates int             `json:"total_candidates"`
	ApplicantsByJob []JobApplicants `json:"applicants_by_job"`
	ByStatus        map[string]int  `json:"by_status"`
}

// Stats computes the dashboard view from the current collections.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int, len(s.jobs))
	byStatus := make(map[string]int)
	for _, c := range s.candidates {
		counts[c.JobID]++
		byStatus[c.Status]++
	}

	stats := Stats{
		TotalJobs:       len(s.jobs),
		TotalCandidates: len(s.candidates),
		ApplicantsByJob: make([]JobApplicants, 0, len(s.jobs)),
		ByStatus:        byStatus,
	}
	for _, j := range s.jobs {
		if j.Status == model.JobStatusOpen {
			stats.OpenJobs++
		}
		stats.ApplicantsByJob = append(stats.ApplicantsByJob, JobApplicants{
			JobID:      j.ID,
			Title:      j.Title,
			Status:     j.Status,
			Applicants: counts[j.ID],
		})
	}
	return stats
}
