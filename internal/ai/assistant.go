package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/IVANP37/TalentIA/internal/model"
)

// FallbackAnswer is returned whenever the assistant cannot answer.
// The chat is a non-critical feature, so failures never propagate.
const FallbackAnswer = "Sorry, I encountered an error answering that. Please try again."

const assistantPreamble = "You are an expert HR assistant. Answer only using the " +
	"provided data about job openings and candidates. Do not make up information."

// Assistant answers free-text questions about the current jobs and
// candidates through the chat endpoint.
type Assistant struct {
	gen TextGenerator
	log *zap.Logger
}

// NewAssistant creates an assistant on top of the given generator.
func NewAssistant(gen TextGenerator, log *zap.Logger) *Assistant {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{gen: gen, log: log}
}

// Answer sends the question with a context block built from jobs and
// candidates and returns the model reply as plain text. On any failure
// it returns FallbackAnswer instead of an error.
func (a *Assistant) Answer(ctx context.Context, question string, jobs []model.Job, candidates []model.Candidate) string {
	system := buildContext(jobs, candidates)

	answer, err := a.gen.Chat(ctx, system, question)
	if err != nil {
		a.log.Warn("assistant chat failed", zap.Error(err))
		return FallbackAnswer
	}
	if answer == "" {
		return FallbackAnswer
	}
	return answer
}

// buildContext summarizes every open job and every candidate into the
// system message the model answers from.
func buildContext(jobs []model.Job, candidates []model.Candidate) string {
	var b strings.Builder
	b.WriteString(assistantPreamble)

	b.WriteString("\n\nJob openings:\n")
	for _, job := range jobs {
		if job.Status != model.JobStatusOpen {
			continue
		}
		fmt.Fprintf(&b, "- ID: %s\n  Title: %s\n  Description: %s\n  Requirements: %s\n",
			job.ID,
			job.Title.In(model.LocaleEN),
			job.Description.In(model.LocaleEN),
			joinRequirements(job.Requirements),
		)
	}

	b.WriteString("\nCandidates:\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- ID: %s\n  Name: %s\n  Job: %s\n  Status: %s\n  Score: %s\n  Summary: %s\n  Skills: %s\n",
			c.ID,
			orNA(c.ParsedData.Name),
			c.JobID,
			c.Status,
			scoreOrNA(c),
			orNA(c.ParsedData.Summary.In(model.LocaleEN)),
			orNA(strings.Join(c.ParsedData.Skills, ", ")),
		)
	}

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func scoreOrNA(c model.Candidate) string {
	if c.MatchAnalysis == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", c.MatchAnalysis.Score)
}
