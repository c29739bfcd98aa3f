package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/modules/progression"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// PathProgress is the per-path summary shown on the dashboard.
type PathProgress struct {
	PathID           uuid.UUID `json:"pathId"`
	TotalLessons     int       `json:"totalLessons"`
	CompletedLessons int       `json:"completedLessons"`
	Percentage       int       `json:"percentage"`
	Complete         bool      `json:"complete"`
}

type ProgressService interface {
	// CompleteLesson marks a material lesson done. Quiz and project lessons
	// complete through their own flows.
	CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID) error

	GetProgress(ctx context.Context, userID, pathID uuid.UUID) ([]*domain.UserProgress, error)
	GetPathProgress(ctx context.Context, userID, pathID uuid.UUID) (*PathProgress, error)
}

type progressService struct {
	db            *gorm.DB
	log           *logger.Logger
	accessService AccessService
	pathRepo      repos.PathRepo
	progressRepo  repos.ProgressRepo
}

func NewProgressService(db *gorm.DB, log *logger.Logger, accessService AccessService, pathRepo repos.PathRepo, progressRepo repos.ProgressRepo) ProgressService {
	return &progressService{
		db:            db,
		log:           log.With("service", "ProgressService"),
		accessService: accessService,
		pathRepo:      pathRepo,
		progressRepo:  progressRepo,
	}
}

func (s *progressService) CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, rec, state, err := s.accessService.ResolveLesson(ctx, tx, userID, lessonID)
		if err != nil {
			return err
		}
		switch lesson.Type {
		case domain.LessonTypeQuiz:
			return apierr.Validation("quiz lessons complete by passing the quiz")
		case domain.LessonTypeProject:
			return apierr.Validation("project lessons complete through submission review")
		}
		if state != progression.Unlocked {
			return apierr.Forbidden("lesson %s is locked", lessonID)
		}
		if rec != nil && rec.Completed {
			// Already done; idempotent.
			return nil
		}

		if rec == nil {
			rec = &domain.UserProgress{
				ID:             uuid.New(),
				UserID:         userID,
				LessonID:       lessonID,
				ApprovalStatus: domain.ApprovalNone,
			}
		}
		rec.Completed = true
		return s.progressRepo.Upsert(ctx, tx, rec)
	})
}

func (s *progressService) GetProgress(ctx context.Context, userID, pathID uuid.UUID) ([]*domain.UserProgress, error) {
	path, err := s.pathRepo.GetByID(ctx, nil, pathID)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, apierr.NotFound("learning path %s not found", pathID)
	}
	return s.progressRepo.ListByUserAndPath(ctx, nil, userID, pathID)
}

func (s *progressService) GetPathProgress(ctx context.Context, userID, pathID uuid.UUID) (*PathProgress, error) {
	path, err := s.pathRepo.GetWithContent(ctx, nil, pathID)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, apierr.NotFound("learning path %s not found", pathID)
	}

	sequence := progression.Flatten(path)
	ids := make([]uuid.UUID, 0, len(sequence))
	for _, l := range sequence {
		ids = append(ids, l.ID)
	}
	rows, err := s.progressRepo.ListByUserAndLessons(ctx, nil, userID, ids)
	if err != nil {
		return nil, err
	}
	byLesson := make(map[uuid.UUID]*domain.UserProgress, len(rows))
	for _, rec := range rows {
		byLesson[rec.LessonID] = rec
	}

	done := 0
	for i := range sequence {
		if progression.TerminalSuccess(&sequence[i], byLesson[sequence[i].ID]) {
			done++
		}
	}
	out := &PathProgress{
		PathID:           pathID,
		TotalLessons:     len(sequence),
		CompletedLessons: done,
	}
	if len(sequence) > 0 {
		out.Percentage = int(math.Round(100 * float64(done) / float64(len(sequence))))
	}
	out.Complete = progression.Complete(sequence, byLesson)
	return out, nil
}
