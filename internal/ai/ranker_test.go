package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IVANP37/TalentIA/internal/model"
)

func testJob() model.Job {
	return model.Job{
		ID:          "job-1",
		Title:       model.Bilingual("Senior Frontend Engineer", "Ingeniero/a Frontend Senior"),
		Description: model.FromPlain("Build web applications."),
		Requirements: []model.LocalizedText{
			model.FromPlain("5+ years of React experience"),
			model.FromPlain("Expertise in TypeScript"),
		},
		Status: model.JobStatusOpen,
	}
}

func testProfile() model.ParsedProfile {
	return model.ParsedProfile{
		Name:    "Ada Lovelace",
		Summary: model.FromPlain("Frontend engineer"),
		Experience: []model.Experience{{
			Title:   model.FromPlain("Lead Developer"),
			Company: "TechCorp",
		}},
		Skills: []string{"React", "TypeScript"},
	}
}

func TestRankSuccess(t *testing.T) {
	gen := &fakeGenerator{generateOut: `{
		"score": 87,
		"summary": "Strong fit",
		"strengths": ["React depth", "TypeScript"],
		"weaknesses": ["No mobile work"]
	}`}

	r := NewRanker(gen, nil)
	analysis, err := r.Rank(context.Background(), testJob(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, 87, analysis.Score)
	assert.Equal(t, "Strong fit", analysis.Summary.EN)
	require.Len(t, analysis.Strengths, 2)
	assert.Equal(t, "React depth", analysis.Strengths[0].EN)
	require.Len(t, analysis.Weaknesses, 1)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Senior Frontend Engineer")
	assert.Contains(t, prompt, "5+ years of React experience, Expertise in TypeScript")
	assert.Contains(t, prompt, "Lead Developer at TechCorp")
	assert.Contains(t, prompt, "React, TypeScript")
}

func TestRankClampsScore(t *testing.T) {
	gen := &fakeGenerator{generateOut: `{"score": 250, "summary": "s"}`}

	r := NewRanker(gen, nil)
	analysis, err := r.Rank(context.Background(), testJob(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, 100, analysis.Score)
}

func TestRankWrapsFailure(t *testing.T) {
	gen := &fakeGenerator{generateErr: errors.New("connection refused")}

	r := NewRanker(gen, nil)
	_, err := r.Rank(context.Background(), testJob(), testProfile())

	var rankErr *RankError
	assert.True(t, errors.As(err, &rankErr))
}

func TestRankWrapsBadPayload(t *testing.T) {
	gen := &fakeGenerator{generateOut: "the candidate looks fine to me"}

	r := NewRanker(gen, nil)
	_, err := r.Rank(context.Background(), testJob(), testProfile())

	var rankErr *RankError
	assert.True(t, errors.As(err, &rankErr))
}
