package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/modules/progression"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// AttemptOutcome is what the learner gets back after submitting answers.
type AttemptOutcome struct {
	Score      int                        `json:"score"`
	Total      int                        `json:"total"`
	Percentage int                        `json:"percentage"`
	Passed     bool                       `json:"passed"`
	Cooldown   progression.CooldownStatus `json:"cooldown"`
}

// QuizService runs quiz attempts. Scoring happens here, server side; the
// client only ever sees questions with the correct answers stripped.
type QuizService interface {
	StartAttempt(ctx context.Context, userID, lessonID uuid.UUID) ([]domain.Question, error)
	SubmitAttempt(ctx context.Context, userID, lessonID uuid.UUID, answers map[uuid.UUID]string) (*AttemptOutcome, error)
	GetCooldown(ctx context.Context, userID, lessonID uuid.UUID) (progression.CooldownStatus, error)
}

type quizService struct {
	db            *gorm.DB
	log           *logger.Logger
	accessService AccessService
	progressRepo  repos.ProgressRepo
	now           func() time.Time
}

func NewQuizService(db *gorm.DB, log *logger.Logger, accessService AccessService, progressRepo repos.ProgressRepo) QuizService {
	return &quizService{
		db:            db,
		log:           log.With("service", "QuizService"),
		accessService: accessService,
		progressRepo:  progressRepo,
		now:           time.Now,
	}
}

// StripAnswers returns copies of the questions with the authoritative answer
// removed, safe to serialize to learners.
func StripAnswers(questions []domain.Question) []domain.Question {
	out := make([]domain.Question, len(questions))
	for i, q := range questions {
		q.CorrectAnswer = ""
		out[i] = q
	}
	return out
}

func (s *quizService) gate(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) (*domain.Lesson, *domain.UserProgress, error) {
	lesson, rec, state, err := s.accessService.ResolveLesson(ctx, tx, userID, lessonID)
	if err != nil {
		return nil, nil, err
	}
	if lesson.Type != domain.LessonTypeQuiz {
		return nil, nil, apierr.Validation("lesson %s is not a quiz", lessonID)
	}
	if state != progression.Unlocked {
		return nil, nil, apierr.Forbidden("lesson %s is locked", lessonID)
	}
	if cd := progression.Cooldown(rec, s.now()); cd.OnCooldown {
		return nil, nil, apierr.Conflict("quiz on cooldown for %d more seconds", cd.RemainingSeconds)
	}
	return lesson, rec, nil
}

func (s *quizService) StartAttempt(ctx context.Context, userID, lessonID uuid.UUID) ([]domain.Question, error) {
	lesson, _, err := s.gate(ctx, nil, userID, lessonID)
	if err != nil {
		return nil, err
	}
	if len(lesson.Questions) == 0 {
		return nil, apierr.Validation("quiz %s has no questions", lessonID)
	}
	return StripAnswers(lesson.Questions), nil
}

func (s *quizService) SubmitAttempt(ctx context.Context, userID, lessonID uuid.UUID, answers map[uuid.UUID]string) (*AttemptOutcome, error) {
	var out *AttemptOutcome
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, _, err := s.gate(ctx, tx, userID, lessonID)
		if err != nil {
			return err
		}

		result, err := progression.ScoreQuiz(lesson.Questions, answers)
		if err != nil {
			if errors.Is(err, progression.ErrNoQuestions) {
				return apierr.Validation("quiz %s has no questions", lessonID)
			}
			return err
		}

		// Serialize concurrent attempts on the same record.
		if _, err := s.ensureRecord(ctx, tx, userID, lessonID); err != nil {
			return err
		}
		rec, err := s.progressRepo.GetByUserAndLessonForUpdate(ctx, tx, userID, lessonID)
		if err != nil {
			return err
		}

		now := s.now()
		if result.Passed {
			rec.Completed = true
			rec.QuizFailedAt = nil
		} else if !progression.Cooldown(rec, now).OnCooldown {
			// Re-failing during an active cooldown must not extend it.
			failedAt := now.UTC()
			rec.QuizFailedAt = &failedAt
		}
		if err := s.progressRepo.Update(ctx, tx, rec); err != nil {
			return err
		}

		out = &AttemptOutcome{
			Score:      result.Score,
			Total:      result.Total,
			Percentage: result.Percentage,
			Passed:     result.Passed,
			Cooldown:   progression.Cooldown(rec, now),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("quiz attempt scored",
		"userId", userID, "lessonId", lessonID,
		"percentage", out.Percentage, "passed", out.Passed)
	return out, nil
}

func (s *quizService) GetCooldown(ctx context.Context, userID, lessonID uuid.UUID) (progression.CooldownStatus, error) {
	rec, err := s.progressRepo.GetByUserAndLesson(ctx, nil, userID, lessonID)
	if err != nil {
		return progression.CooldownStatus{}, err
	}
	return progression.Cooldown(rec, s.now()), nil
}

func (s *quizService) ensureRecord(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) (*domain.UserProgress, error) {
	rec, err := s.progressRepo.GetByUserAndLesson(ctx, tx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}
	rec = &domain.UserProgress{
		ID:             uuid.New(),
		UserID:         userID,
		LessonID:       lessonID,
		ApprovalStatus: domain.ApprovalNone,
	}
	if err := s.progressRepo.Upsert(ctx, tx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
