package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/IVANP37/TalentIA/internal/model"
	"github.com/IVANP37/TalentIA/internal/ollama"
)

const parsePromptFormat = `Extract the following information from the CV below as JSON:
{
  "name": "Full name",
  "email": "Email address",
  "phone": "Phone number",
  "dni": "National ID if present",
  "gender": "Gender if stated",
  "summary": "Professional summary",
  "experience": [
    { "title": "Position", "company": "Company", "duration": "Duration", "description": "Description" }
  ],
  "education": [
    { "institution": "Institution", "degree": "Degree", "year": "Year" }
  ],
  "skills": ["skill1", "skill2"],
  "rating": {
    "score": 1-5,
    "comment": "Brief comment on the overall impression (1=very weak, 5=excellent)"
  }
}
If a field is missing, use an empty string or an empty array.
Return ONLY the JSON. Do NOT include any additional text, explanations, introductions or markdown code blocks (such as %s).
CV:
%s
`

// rawProfile is the untyped shape the model is asked for. Everything
// is optional because the model cannot be trusted to fill it.
type rawProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DNI        string `json:"dni"`
	Gender     string `json:"gender"`
	Summary    string `json:"summary"`
	Experience []struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Duration    string `json:"duration"`
		Description string `json:"description"`
	} `json:"experience"`
	Education []struct {
		Institution string `json:"institution"`
		Degree      string `json:"degree"`
		Year        string `json:"year"`
	} `json:"education"`
	Skills []string `json:"skills"`
	Rating *struct {
		Score   float64 `json:"score"`
		Comment string  `json:"comment"`
	} `json:"rating"`
}

// Parser turns raw CV text into a structured profile through the
// generation endpoint.
type Parser struct {
	gen TextGenerator
	log *zap.Logger
}

// NewParser creates a CV parser on top of the given generator.
func NewParser(gen TextGenerator, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{gen: gen, log: log}
}

// Parse extracts a structured profile from cvText. Any underlying
// failure comes back as a *ParseError.
func (p *Parser) Parse(ctx context.Context, cvText string) (model.ParsedProfile, error) {
	prompt := fmt.Sprintf(parsePromptFormat, "```json", cvText)

	out, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		p.log.Warn("cv parse call failed", zap.Error(err))
		return model.ParsedProfile{}, &ParseError{Err: err}
	}

	var raw rawProfile
	if err := ollama.ExtractJSON(out, &raw); err != nil {
		p.log.Warn("cv parse extraction failed", zap.Error(err))
		return model.ParsedProfile{}, &ParseError{Err: err}
	}

	return canonicalizeProfile(raw), nil
}

// canonicalizeProfile applies defaulting to the untrusted model output
// and replicates plain text into both locales so the stored
// representation is uniform.
func canonicalizeProfile(raw rawProfile) model.ParsedProfile {
	profile := model.ParsedProfile{
		Name:       raw.Name,
		Email:      raw.Email,
		Phone:      raw.Phone,
		DNI:        raw.DNI,
		Gender:     raw.Gender,
		Summary:    model.FromPlain(raw.Summary),
		Experience: make([]model.Experience, 0, len(raw.Experience)),
		Education:  make([]model.Education, 0, len(raw.Education)),
		Skills:     raw.Skills,
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	for _, e := range raw.Experience {
		profile.Experience = append(profile.Experience, model.Experience{
			Title:       model.FromPlain(e.Title),
			Company:     e.Company,
			Duration:    model.FromPlain(e.Duration),
			Description: model.FromPlain(e.Description),
		})
	}
	for _, e := range raw.Education {
		profile.Education = append(profile.Education, model.Education{
			Institution: e.Institution,
			Degree:      model.FromPlain(e.Degree),
			Year:        e.Year,
		})
	}

	if raw.Rating != nil {
		profile.Rating = &model.Rating{
			Score:   clamp(int(raw.Rating.Score+0.5), 1, 5),
			Comment: model.FromPlain(raw.Rating.Comment),
		}
	}

	return profile
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
