package app

import (
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type Repos struct {
	User     repos.UserRepo
	Path     repos.PathRepo
	Lesson   repos.LessonRepo
	Progress repos.ProgressRepo
	Cert     repos.CertificateRepo
	Template repos.CertificateTemplateRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:     repos.NewUserRepo(db, log),
		Path:     repos.NewPathRepo(db, log),
		Lesson:   repos.NewLessonRepo(db, log),
		Progress: repos.NewProgressRepo(db, log),
		Cert:     repos.NewCertificateRepo(db, log),
		Template: repos.NewCertificateTemplateRepo(db, log),
	}
}
