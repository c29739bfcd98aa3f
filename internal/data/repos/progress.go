package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type ProgressRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.UserProgress, error)

	// GetByIDForUpdate locks the row for the admin decision write path.
	GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.UserProgress, error)

	GetByUserAndLesson(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) (*domain.UserProgress, error)

	// GetByUserAndLessonForUpdate takes a row lock so concurrent attempts on
	// the same record serialize. Must be called inside a transaction.
	GetByUserAndLessonForUpdate(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) (*domain.UserProgress, error)

	ListByUserAndLessons(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonIDs []uuid.UUID) ([]*domain.UserProgress, error)
	ListByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) ([]*domain.UserProgress, error)
	ListPending(ctx context.Context, tx *gorm.DB) ([]*domain.UserProgress, error)

	// Upsert inserts the record or updates the mutable columns of the
	// existing (user, lesson) row.
	Upsert(ctx context.Context, tx *gorm.DB, row *domain.UserProgress) error

	Update(ctx context.Context, tx *gorm.DB, row *domain.UserProgress) error
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	return &progressRepo{db: db, log: baseLog.With("repo", "ProgressRepo")}
}

func (r *progressRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.UserProgress, error) {
	return r.getByID(ctx, tx, id, false)
}

func (r *progressRepo) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.UserProgress, error) {
	return r.getByID(ctx, tx, id, true)
}

func (r *progressRepo) getByID(ctx context.Context, tx *gorm.DB, id uuid.UUID, lock bool) (*domain.UserProgress, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	q := t.WithContext(ctx)
	if lock && t.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out domain.UserProgress
	if err := q.Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *progressRepo) GetByUserAndLesson(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) (*domain.UserProgress, error) {
	return r.get(ctx, tx, userID, lessonID, false)
}

func (r *progressRepo) GetByUserAndLessonForUpdate(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) (*domain.UserProgress, error) {
	return r.get(ctx, tx, userID, lessonID, true)
}

func (r *progressRepo) get(ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID, lock bool) (*domain.UserProgress, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || lessonID == uuid.Nil {
		return nil, nil
	}
	q := t.WithContext(ctx)
	// SQLite serializes writers on its own and rejects FOR UPDATE.
	if lock && t.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out domain.UserProgress
	if err := q.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *progressRepo) ListByUserAndLessons(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonIDs []uuid.UUID) ([]*domain.UserProgress, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.UserProgress
	if userID == uuid.Nil || len(lessonIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *progressRepo) ListByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) ([]*domain.UserProgress, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.UserProgress
	if userID == uuid.Nil || pathID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Joins(`JOIN lesson ON lesson.id = user_progress.lesson_id`).
		Where("user_progress.user_id = ? AND lesson.learning_path_id = ?", userID, pathID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *progressRepo) ListPending(ctx context.Context, tx *gorm.DB) ([]*domain.UserProgress, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.UserProgress
	if err := t.WithContext(ctx).
		Preload("User").
		Preload("Lesson").
		Where("approval_status = ?", domain.ApprovalPending).
		Order("updated_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *progressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *domain.UserProgress) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"completed",
				"submission_file_url",
				"submission_drive_link",
				"approval_status",
				"admin_note",
				"quiz_failed_at",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *progressRepo) Update(ctx context.Context, tx *gorm.DB, row *domain.UserProgress) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}
