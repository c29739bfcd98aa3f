package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// ErrDuplicateCertificate surfaces the unique (user, path) index violation
// so the service can treat a lost insert race as "already issued".
var ErrDuplicateCertificate = errors.New("certificate already issued")

type CertificateRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.Certificate) error
	GetByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (*domain.Certificate, error)
	GetByPublicID(ctx context.Context, tx *gorm.DB, publicID string) (*domain.Certificate, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Certificate, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.Certificate, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type certificateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCertificateRepo(db *gorm.DB, baseLog *logger.Logger) CertificateRepo {
	return &certificateRepo{db: db, log: baseLog.With("repo", "CertificateRepo")}
}

func (r *certificateRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.Certificate) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCertificate
		}
		return err
	}
	return nil
}

func (r *certificateRepo) GetByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (*domain.Certificate, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || pathID == uuid.Nil {
		return nil, nil
	}
	var out domain.Certificate
	if err := t.WithContext(ctx).
		Where("user_id = ? AND learning_path_id = ?", userID, pathID).
		First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *certificateRepo) GetByPublicID(ctx context.Context, tx *gorm.DB, publicID string) (*domain.Certificate, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if publicID == "" {
		return nil, nil
	}
	var out domain.Certificate
	if err := t.WithContext(ctx).
		Preload("User").
		Preload("LearningPath").
		Where("public_id = ?", publicID).
		First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *certificateRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Certificate, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Certificate
	if userID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("LearningPath").
		Where("user_id = ?", userID).
		Order("issued_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *certificateRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.Certificate, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Certificate
	if err := t.WithContext(ctx).
		Preload("User").
		Preload("LearningPath").
		Order("issued_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *certificateRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&domain.Certificate{}).Error
}
