package app

import (
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/handlers"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type Handlers struct {
	Path        *handlers.PathHandler
	Progress    *handlers.ProgressHandler
	Quiz        *handlers.QuizHandler
	Submission  *handlers.SubmissionHandler
	Certificate *handlers.CertificateHandler
	Template    *handlers.TemplateHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Path:        handlers.NewPathHandler(log, services.Path, services.Access),
		Progress:    handlers.NewProgressHandler(log, services.Progress, services.Quiz),
		Quiz:        handlers.NewQuizHandler(log, services.Quiz),
		Submission:  handlers.NewSubmissionHandler(log, services.Submission),
		Certificate: handlers.NewCertificateHandler(log, services.Certificate),
		Template:    handlers.NewTemplateHandler(log, services.Template),
	}
}
