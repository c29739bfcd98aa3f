package app

import (
	"gorm.io/gorm"

	goredis "github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/clients/redis"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/modules/certgen"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/services"
)

type Services struct {
	Auth        services.AuthService
	Path        services.PathService
	Access      services.AccessService
	Progress    services.ProgressService
	Quiz        services.QuizService
	Submission  services.SubmissionService
	Certificate services.CertificateService
	Template    services.TemplateService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, renderer *certgen.Renderer, cache *goredis.Cache) Services {
	log.Info("Wiring services...")
	access := services.NewAccessService(db, log, repos.Path, repos.Lesson, repos.Progress)
	return Services{
		Auth:        services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey),
		Path:        services.NewPathService(db, log, repos.Path),
		Access:      access,
		Progress:    services.NewProgressService(db, log, access, repos.Path, repos.Progress),
		Quiz:        services.NewQuizService(db, log, access, repos.Progress),
		Submission:  services.NewSubmissionService(db, log, access, repos.Progress),
		Certificate: services.NewCertificateService(db, log, access, repos.Path, repos.User, repos.Cert, repos.Template, renderer, cache),
		Template:    services.NewTemplateService(db, log, repos.Template, cache),
	}
}
