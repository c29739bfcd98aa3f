package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:    cfg.ServiceName,
		AllowedOrigins: cfg.AllowedOrigins,

		AuthMiddleware:     middleware.Auth,
		PathHandler:        handlers.Path,
		ProgressHandler:    handlers.Progress,
		QuizHandler:        handlers.Quiz,
		SubmissionHandler:  handlers.Submission,
		CertificateHandler: handlers.Certificate,
		TemplateHandler:    handlers.Template,
	})
}
