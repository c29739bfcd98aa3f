package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type LessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.Lesson) ([]*domain.Lesson, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Lesson, error)

	// GetWithQuestions loads the lesson and its questions in index order.
	GetWithQuestions(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Lesson, error)

	ListByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*domain.Lesson, error)
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	return &lessonRepo{db: db, log: baseLog.With("repo", "LessonRepo")}
}

func (r *lessonRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Lesson) ([]*domain.Lesson, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*domain.Lesson{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *lessonRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Lesson, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out domain.Lesson
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *lessonRepo) GetWithQuestions(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Lesson, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out domain.Lesson
	err := t.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"index" ASC`)
		}).
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *lessonRepo) ListByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*domain.Lesson, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Lesson
	if pathID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("learning_path_id = ?", pathID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
