package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IVANP37/TalentIA/internal/model"
	"github.com/IVANP37/TalentIA/internal/utilities"
)

// GetJobs returns every job posting, most recent first.
// @Summary List job postings
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.Job "All job postings, most recent first"
// @Router /jobs [get]
func (rc *RecruitmentController) GetJobs(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Store.Jobs())
}

// GetJobByID returns a single job posting.
// @Summary Get one job posting
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} model.Job
// @Failure 404 {object} utilities.ErrorResponse "Unknown job id"
// @Router /jobs/{id} [get]
func (rc *RecruitmentController) GetJobByID(c *gin.Context) {
	job, ok := rc.Store.Job(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJobHandler creates a new job posting from single-locale input.
// @Summary Create job posting
// @Description Text fields are replicated into both locales; the job starts Open.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job body model.JobInput true "New job fields"
// @Success 201 {object} model.Job "Successfully created job posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or missing fields"
// @Router /jobs [post]
func (rc *RecruitmentController) CreateJobHandler(c *gin.Context) {
	var input model.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := rc.Store.CreateJob(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetApplicants returns the candidates for a job, best match first.
// @Summary List applicants for a job
// @Description Sorted by descending match score; candidates without an analysis sort last. An unknown job id yields an empty list.
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {array} model.Candidate
// @Router /jobs/{id}/applicants [get]
func (rc *RecruitmentController) GetApplicants(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Store.ListApplicants(c.Param("id")))
}

// GetStats returns the dashboard view of the current collections.
// @Summary Recruitment dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} store.Stats
// @Router /stats [get]
func (rc *RecruitmentController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Store.Stats())
}
