package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type PathRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.LearningPath) ([]*domain.LearningPath, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.LearningPath, error)

	// GetWithContent loads the path with chapters, lessons and questions,
	// ordered by their indexes so callers can flatten without re-sorting.
	GetWithContent(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.LearningPath, error)

	List(ctx context.Context, tx *gorm.DB) ([]*domain.LearningPath, error)
	Update(ctx context.Context, tx *gorm.DB, row *domain.LearningPath) error
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
}

type pathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPathRepo(db *gorm.DB, baseLog *logger.Logger) PathRepo {
	return &pathRepo{db: db, log: baseLog.With("repo", "PathRepo")}
}

func (r *pathRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.LearningPath) ([]*domain.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*domain.LearningPath{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pathRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out domain.LearningPath
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *pathRepo) GetWithContent(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out domain.LearningPath
	err := t.WithContext(ctx).
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"index" ASC`)
		}).
		Preload("Chapters.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"index" ASC`)
		}).
		Preload("Chapters.Lessons.Questions", func(db *gorm.DB) *gorm.DB {
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

func (r *pathRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.LearningPath
	if err := t.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pathRepo) Update(ctx context.Context, tx *gorm.DB, row *domain.LearningPath) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *pathRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Model(&domain.LearningPath{}).
		Where("id = ?", id).
		Updates(updates).Error
}
