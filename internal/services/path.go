package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// PathService serves the published curriculum catalog. Content authoring is
// out of scope; paths are read-only here.
type PathService interface {
	List(ctx context.Context) ([]*domain.LearningPath, error)

	// Get returns the path with its full chapter/lesson tree. Quiz answers
	// are stripped before the tree leaves the service.
	Get(ctx context.Context, id uuid.UUID) (*domain.LearningPath, error)
}

type pathService struct {
	db       *gorm.DB
	log      *logger.Logger
	pathRepo repos.PathRepo
}

func NewPathService(db *gorm.DB, log *logger.Logger, pathRepo repos.PathRepo) PathService {
	return &pathService{db: db, log: log.With("service", "PathService"), pathRepo: pathRepo}
}

func (s *pathService) List(ctx context.Context) ([]*domain.LearningPath, error) {
	return s.pathRepo.List(ctx, nil)
}

func (s *pathService) Get(ctx context.Context, id uuid.UUID) (*domain.LearningPath, error) {
	path, err := s.pathRepo.GetWithContent(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, apierr.NotFound("learning path %s not found", id)
	}
	for ci := range path.Chapters {
		for li := range path.Chapters[ci].Lessons {
			path.Chapters[ci].Lessons[li].Questions = StripAnswers(path.Chapters[ci].Lessons[li].Questions)
		}
	}
	return path, nil
}
