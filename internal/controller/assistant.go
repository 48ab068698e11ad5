package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IVANP37/TalentIA/internal/utilities"
)

// AssistantInput is the request body for the HR assistant.
type AssistantInput struct {
	Question string `json:"question"`
}

// AssistantResponse carries the assistant's plain-text answer.
type AssistantResponse struct {
	Answer string `json:"answer"`
}

// AskAssistant answers a free-text question about the current jobs and
// candidates. The assistant never fails: any upstream problem becomes
// a fixed fallback answer.
// @Summary Ask the HR assistant
// @Tags Assistant
// @Accept json
// @Produce json
// @Param question body AssistantInput true "Free-text question"
// @Success 200 {object} AssistantResponse
// @Failure 400 {object} utilities.ErrorResponse "Empty question"
// @Router /assistant [post]
func (rc *RecruitmentController) AskAssistant(c *gin.Context) {
	var input AssistantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if input.Question == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "question is required"})
		return
	}

	answer := rc.Assistant.Answer(c.Request.Context(), input.Question,
		rc.Store.Jobs(), rc.Store.Candidates())
	c.JSON(http.StatusOK, AssistantResponse{Answer: answer})
}
