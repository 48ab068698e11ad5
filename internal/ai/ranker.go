package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/IVANP37/TalentIA/internal/model"
	"github.com/IVANP37/TalentIA/internal/ollama"
)

const rankPromptFormat = `Given the following job posting and candidate, answer in JSON with this format:
{
  "score": 0-100,
  "summary": "Fit summary",
  "strengths": ["strength1", "strength2"],
  "weaknesses": ["weakness1", "weakness2"]
}

Return ONLY the JSON. Do NOT include any additional text, explanations, introductions or markdown code blocks (such as %s).

Job posting:
Title: %s
Description: %s
Requirements: %s

Candidate:
Summary: %s
Experience: %s
Skills: %s
`

type rawAnalysis struct {
	Score      float64  `json:"score"`
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Ranker evaluates how well a parsed profile fits a job posting.
type Ranker struct {
	gen TextGenerator
	log *zap.Logger
}

// NewRanker creates a ranker on top of the given generator.
func NewRanker(gen TextGenerator, log *zap.Logger) *Ranker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ranker{gen: gen, log: log}
}

// Rank produces the match analysis for profile against job. Any
// underlying failure comes back as a *RankError.
func (r *Ranker) Rank(ctx context.Context, job model.Job, profile model.ParsedProfile) (*model.MatchAnalysis, error) {
	prompt := fmt.Sprintf(rankPromptFormat, "```json",
		job.Title.In(model.LocaleEN),
		job.Description.In(model.LocaleEN),
		joinRequirements(job.Requirements),
		profile.Summary.In(model.LocaleEN),
		joinExperience(profile.Experience),
		strings.Join(profile.Skills, ", "),
	)

	out, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		r.log.Warn("rank call failed", zap.String("job_id", job.ID), zap.Error(err))
		return nil, &RankError{Err: err}
	}

	var raw rawAnalysis
	if err := ollama.ExtractJSON(out, &raw); err != nil {
		r.log.Warn("rank extraction failed", zap.String("job_id", job.ID), zap.Error(err))
		return nil, &RankError{Err: err}
	}

	analysis := &model.MatchAnalysis{
		Score:      clamp(int(raw.Score+0.5), 0, 100),
		Summary:    model.FromPlain(raw.Summary),
		Strengths:  make([]model.LocalizedText, 0, len(raw.Strengths)),
		Weaknesses: make([]model.LocalizedText, 0, len(raw.Weaknesses)),
	}
	for _, s := range raw.Strengths {
		analysis.Strengths = append(analysis.Strengths, model.FromPlain(s))
	}
	for _, w := range raw.Weaknesses {
		analysis.Weaknesses = append(analysis.Weaknesses, model.FromPlain(w))
	}
	return analysis, nil
}

func joinRequirements(reqs []model.LocalizedText) string {
	parts := make([]string, 0, len(reqs))
	for _, r := range reqs {
		parts = append(parts, r.In(model.LocaleEN))
	}
	return strings.Join(parts, ", ")
}

func joinExperience(entries []model.Experience) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s at %s", e.Title.In(model.LocaleEN), e.Company))
	}
	return strings.Join(parts, ", ")
}
