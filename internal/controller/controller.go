// Package controller provides the HTTP handlers for the recruitment
// API. Handlers translate between the JSON surface and the store; all
// domain rules live in the store and its collaborators.
package controller

import (
	"go.uber.org/zap"

	"github.com/IVANP37/TalentIA/internal/ai"
	"github.com/IVANP37/TalentIA/internal/store"
)

// RecruitmentController holds the store and assistant used by every
// endpoint.
type RecruitmentController struct {
	Store     *store.Store
	Assistant *ai.Assistant
	Log       *zap.Logger
}

// NewRecruitmentController creates a controller over the given store
// and assistant.
func NewRecruitmentController(s *store.Store, assistant *ai.Assistant, log *zap.Logger) *RecruitmentController {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecruitmentController{
		Store:     s,
		Assistant: assistant,
		Log:       log,
	}
}
