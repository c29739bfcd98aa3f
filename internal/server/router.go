package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/handlers"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/middleware"
)

type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string

	AuthMiddleware     *middleware.AuthMiddleware
	PathHandler        *handlers.PathHandler
	ProgressHandler    *handlers.ProgressHandler
	QuizHandler        *handlers.QuizHandler
	SubmissionHandler  *handlers.SubmissionHandler
	CertificateHandler *handlers.CertificateHandler
	TemplateHandler    *handlers.TemplateHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	api.GET("/certificates/verify/:certificateId", cfg.CertificateHandler.Verify)

	// ===============
	// || Learner   ||
	// ===============
	learner := api.Group("/")
	learner.Use(cfg.AuthMiddleware.RequireAuth())
	// Catalog + gating
	learner.GET("/paths", cfg.PathHandler.List)
	learner.GET("/paths/:id", cfg.PathHandler.Get)
	learner.GET("/paths/:id/access", cfg.PathHandler.GetAccess)
	// Progress
	learner.GET("/progress", cfg.ProgressHandler.GetProgress)
	learner.GET("/progress/path", cfg.ProgressHandler.GetPathProgress)
	learner.GET("/progress/cooldown", cfg.ProgressHandler.GetCooldown)
	learner.POST("/progress/complete", cfg.ProgressHandler.CompleteLesson)
	// Quiz
	learner.POST("/quiz/:lessonId/start", cfg.QuizHandler.StartAttempt)
	learner.POST("/quiz/:lessonId/attempt", cfg.QuizHandler.SubmitAttempt)
	// Project submissions
	learner.POST("/submissions", cfg.SubmissionHandler.Submit)
	// Certificates
	learner.GET("/certificates", cfg.CertificateHandler.ListMine)
	learner.POST("/certificates/issue", cfg.CertificateHandler.Issue)
	learner.GET("/certificates/:certificateId/render", cfg.CertificateHandler.Render)

	// ===============
	// || Admin     ||
	// ===============
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	admin.GET("/submissions", cfg.SubmissionHandler.ListPending)
	admin.POST("/submissions/:id/approve", cfg.SubmissionHandler.Approve)
	admin.POST("/submissions/:id/reject", cfg.SubmissionHandler.Reject)
	admin.GET("/certificates", cfg.CertificateHandler.ListAll)
	admin.DELETE("/certificates/:id", cfg.CertificateHandler.Revoke)
	admin.GET("/certificate-template", cfg.TemplateHandler.Get)
	admin.PUT("/certificate-template", cfg.TemplateHandler.Update)

	return router
}

// SplitOrigins parses a comma separated origin list from the environment.
func SplitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
