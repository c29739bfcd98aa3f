package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/modules/progression"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// LessonAccess is one row of the resolver output: the lesson's position in
// the flattened path and whether the caller may open it.
type LessonAccess struct {
	LessonID       uuid.UUID            `json:"lessonId"`
	ChapterID      uuid.UUID            `json:"chapterId"`
	Position       int                  `json:"position"`
	Title          string               `json:"title"`
	Type           string               `json:"type"`
	State          progression.LockState `json:"state"`
	Completed      bool                 `json:"completed"`
	ApprovalStatus string               `json:"approvalStatus"`
}

// AccessService evaluates lesson gating for a user. It owns the load
// sequence shared by the quiz, progress and certificate services: fetch the
// path tree, flatten it, fetch the user's progress, resolve locks.
type AccessService interface {
	GetPathAccess(ctx context.Context, userID, pathID uuid.UUID) ([]LessonAccess, error)

	// ResolveLesson gates a single lesson: it returns the lesson, the
	// caller's progress record (nil when none) and the lock state.
	ResolveLesson(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) (*domain.Lesson, *domain.UserProgress, progression.LockState, error)

	// PathComplete reports whether every lesson of the path is
	// terminal-success for the user.
	PathComplete(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (bool, error)
}

type accessService struct {
	db           *gorm.DB
	log          *logger.Logger
	pathRepo     repos.PathRepo
	lessonRepo   repos.LessonRepo
	progressRepo repos.ProgressRepo
}

func NewAccessService(db *gorm.DB, log *logger.Logger, pathRepo repos.PathRepo, lessonRepo repos.LessonRepo, progressRepo repos.ProgressRepo) AccessService {
	return &accessService{
		db:           db,
		log:          log.With("service", "AccessService"),
		pathRepo:     pathRepo,
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
	}
}

func (s *accessService) loadSequence(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]domain.Lesson, error) {
	path, err := s.pathRepo.GetWithContent(ctx, tx, pathID)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, apierr.NotFound("learning path %s not found", pathID)
	}
	return progression.Flatten(path), nil
}

func (s *accessService) loadProgress(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sequence []domain.Lesson) (map[uuid.UUID]*domain.UserProgress, error) {
	ids := make([]uuid.UUID, 0, len(sequence))
	for _, l := range sequence {
		ids = append(ids, l.ID)
	}
	rows, err := s.progressRepo.ListByUserAndLessons(ctx, tx, userID, ids)
	if err != nil {
		return nil, err
	}
	byLesson := make(map[uuid.UUID]*domain.UserProgress, len(rows))
	for _, rec := range rows {
		byLesson[rec.LessonID] = rec
	}
	return byLesson, nil
}

func (s *accessService) GetPathAccess(ctx context.Context, userID, pathID uuid.UUID) ([]LessonAccess, error) {
	sequence, err := s.loadSequence(ctx, nil, pathID)
	if err != nil {
		return nil, err
	}
	byLesson, err := s.loadProgress(ctx, nil, userID, sequence)
	if err != nil {
		return nil, err
	}
	states := progression.Resolve(sequence, byLesson)

	out := make([]LessonAccess, 0, len(sequence))
	for i, lesson := range sequence {
		row := LessonAccess{
			LessonID:       lesson.ID,
			ChapterID:      lesson.ChapterID,
			Position:       i,
			Title:          lesson.Title,
			Type:           lesson.Type,
			State:          states[lesson.ID],
			ApprovalStatus: domain.ApprovalNone,
		}
		if rec := byLesson[lesson.ID]; rec != nil {
			row.Completed = rec.Completed
			row.ApprovalStatus = rec.ApprovalStatus
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *accessService) ResolveLesson(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) (*domain.Lesson, *domain.UserProgress, progression.LockState, error) {
	lesson, err := s.lessonRepo.GetWithQuestions(ctx, tx, lessonID)
	if err != nil {
		return nil, nil, progression.Locked, err
	}
	if lesson == nil {
		return nil, nil, progression.Locked, apierr.NotFound("lesson %s not found", lessonID)
	}

	sequence, err := s.loadSequence(ctx, tx, lesson.LearningPathID)
	if err != nil {
		return nil, nil, progression.Locked, err
	}
	byLesson, err := s.loadProgress(ctx, tx, userID, sequence)
	if err != nil {
		return nil, nil, progression.Locked, err
	}
	states := progression.Resolve(sequence, byLesson)

	state, ok := states[lesson.ID]
	if !ok {
		// Lesson exists but is not reachable from its path tree; treat as
		// locked rather than guessing.
		s.log.Warn("lesson missing from flattened path", "lessonId", lesson.ID, "pathId", lesson.LearningPathID)
		state = progression.Locked
	}
	return lesson, byLesson[lesson.ID], state, nil
}

func (s *accessService) PathComplete(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (bool, error) {
	sequence, err := s.loadSequence(ctx, tx, pathID)
	if err != nil {
		return false, err
	}
	byLesson, err := s.loadProgress(ctx, tx, userID, sequence)
	if err != nil {
		return false, err
	}
	return progression.Complete(sequence, byLesson), nil
}
