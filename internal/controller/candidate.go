package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/IVANP37/TalentIA/internal/model"
	"github.com/IVANP37/TalentIA/internal/store"
	"github.com/IVANP37/TalentIA/internal/utilities"
)

// ApplyInput is the request body for candidate intake.
type ApplyInput struct {
	CVText string `json:"cv_text"`
}

// StatusInput is the request body for a status update.
type StatusInput struct {
	Status string `json:"status"`
}

// NoteInput is the request body for adding a note. A missing locale is
// filled from the other one.
type NoteInput struct {
	EN string `json:"en"`
	ES string `json:"es"`
}

// InterviewInput is the request body for scheduling an interview.
type InterviewInput struct {
	Date            string `json:"date"`
	InterviewerName string `json:"interviewer_name"`
	Mode            string `json:"mode"`
	Location        string `json:"location"`
}

// GetCandidates returns every candidate, most recent first.
// @Summary List candidates
// @Tags Candidates
// @Produce json
// @Success 200 {array} model.Candidate
// @Router /candidates [get]
func (rc *RecruitmentController) GetCandidates(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Store.Candidates())
}

// GetCandidateByID returns a single candidate.
// @Summary Get one candidate
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate id"
// @Success 200 {object} model.Candidate
// @Failure 404 {object} utilities.ErrorResponse "Unknown candidate id"
// @Router /candidates/{id} [get]
func (rc *RecruitmentController) GetCandidateByID(c *gin.Context) {
	candidate, ok := rc.Store.Candidate(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate not found"})
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// ApplyHandler runs the AI intake for a job: parse the CV, rank the
// profile, store the candidate.
// @Summary Apply to a job with raw CV text
// @Description Parses and ranks the CV through the generation endpoint. Nothing is stored unless both steps succeed.
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param application body ApplyInput true "Raw CV text"
// @Success 201 {object} model.Candidate "Newly created candidate"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or empty CV text"
// @Failure 404 {object} utilities.ErrorResponse "Unknown job id"
// @Failure 502 {object} utilities.ErrorResponse "CV parsing or ranking failed"
// @Router /jobs/{id}/applications [post]
func (rc *RecruitmentController) ApplyHandler(c *gin.Context) {
	var input ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if input.CVText == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "cv_text is required"})
		return
	}

	candidate, err := rc.Store.AddCandidate(c.Request.Context(), c.Param("id"), input.CVText)
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		// parse/rank failures are upstream model problems
		c.JSON(http.StatusBadGateway, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to process candidate: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// UpdateStatusHandler replaces a candidate's status.
// @Summary Update candidate status
// @Description Any status from the closed set is accepted from any prior status.
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate id"
// @Param status body StatusInput true "New status"
// @Success 200 {object} model.Candidate
// @Failure 400 {object} utilities.ErrorResponse "Unknown status value"
// @Failure 404 {object} utilities.ErrorResponse "Unknown candidate id"
// @Router /candidates/{id}/status [patch]
func (rc *RecruitmentController) UpdateStatusHandler(c *gin.Context) {
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if !model.ValidCandidateStatus(input.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unknown status %q", input.Status),
		})
		return
	}

	id := c.Param("id")
	if !rc.Store.UpdateCandidateStatus(id, input.Status) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate not found"})
		return
	}

	candidate, _ := rc.Store.Candidate(id)
	c.JSON(http.StatusOK, candidate)
}

// AddNoteHandler appends a note to a candidate.
// @Summary Add a note to a candidate
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate id"
// @Param note body NoteInput true "Note text, either or both locales"
// @Success 200 {object} model.Candidate
// @Failure 400 {object} utilities.ErrorResponse "Empty note"
// @Failure 404 {object} utilities.ErrorResponse "Unknown candidate id"
// @Router /candidates/{id}/notes [post]
func (rc *RecruitmentController) AddNoteHandler(c *gin.Context) {
	var input NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if input.EN == "" && input.ES == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Note must not be empty"})
		return
	}
	if input.EN == "" {
		input.EN = input.ES
	}
	if input.ES == "" {
		input.ES = input.EN
	}

	id := c.Param("id")
	if !rc.Store.AddNote(id, model.Bilingual(input.EN, input.ES)) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate not found"})
		return
	}

	candidate, _ := rc.Store.Candidate(id)
	c.JSON(http.StatusOK, candidate)
}

// ScheduleInterviewHandler sets the interview fields for a candidate.
// @Summary Schedule an interview
// @Description Sets all interview fields and forces the status to Interview, whatever the current status is.
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate id"
// @Param interview body InterviewInput true "Interview details"
// @Success 200 {object} model.Candidate
// @Failure 400 {object} utilities.ErrorResponse "Invalid date, mode or missing fields"
// @Failure 404 {object} utilities.ErrorResponse "Unknown candidate id"
// @Router /candidates/{id}/interview [post]
func (rc *RecruitmentController) ScheduleInterviewHandler(c *gin.Context) {
	var input InterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	when, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid date, want RFC3339: %s", err.Error()),
		})
		return
	}
	if input.InterviewerName == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "interviewer_name is required"})
		return
	}
	if !model.ValidInterviewMode(input.Mode) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unknown interview mode %q", input.Mode),
		})
		return
	}
	if input.Location == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "location is required"})
		return
	}

	id := c.Param("id")
	if !rc.Store.ScheduleInterview(id, when, input.InterviewerName, input.Mode, input.Location) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Candidate not found"})
		return
	}

	candidate, _ := rc.Store.Candidate(id)
	c.JSON(http.StatusOK, candidate)
}
