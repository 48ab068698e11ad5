package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/IVANP37/TalentIA/internal/controller"
	"github.com/IVANP37/TalentIA/internal/middleware"

	// Init swagger doc
	_ "github.com/IVANP37/TalentIA/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes registers every HTTP endpoint on a gin engine.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	if allowOriginsStr == "" {
		allowOriginsStr = "http://localhost:5173"
	}
	allowOrigins := strings.Split(allowOriginsStr, ",")

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Content-Type"},
	}))

	rc := controller.NewRecruitmentController(s.store, s.assistant, s.log)

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		jobRoute := v1.Group("/jobs")
		{
			jobRoute.GET("", rc.GetJobs)
			jobRoute.POST("", rc.CreateJobHandler)
			jobRoute.GET(":id", rc.GetJobByID)
			jobRoute.GET(":id/applicants", rc.GetApplicants)
			jobRoute.POST(":id/applications", middleware.SizeLimit(1<<20), rc.ApplyHandler)
		}

		candidateRoute := v1.Group("/candidates")
		{
			candidateRoute.GET("", rc.GetCandidates)
			candidateRoute.GET(":id", rc.GetCandidateByID)
			candidateRoute.PATCH(":id/status", rc.UpdateStatusHandler)
			candidateRoute.POST(":id/notes", rc.AddNoteHandler)
			candidateRoute.POST(":id/interview", rc.ScheduleInterviewHandler)
		}

		v1.POST("/assistant", rc.AskAssistant)
		v1.GET("/stats", rc.GetStats)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.db.Health())
}
