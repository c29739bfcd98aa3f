package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type CertificateTemplateRepo interface {
	// GetActive returns the current global template, or nil when none is
	// configured. With several active rows the most recently updated wins.
	GetActive(ctx context.Context, tx *gorm.DB) (*domain.CertificateTemplate, error)

	Create(ctx context.Context, tx *gorm.DB, row *domain.CertificateTemplate) error
	Update(ctx context.Context, tx *gorm.DB, row *domain.CertificateTemplate) error
}

type certificateTemplateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCertificateTemplateRepo(db *gorm.DB, baseLog *logger.Logger) CertificateTemplateRepo {
	return &certificateTemplateRepo{db: db, log: baseLog.With("repo", "CertificateTemplateRepo")}
}

func (r *certificateTemplateRepo) GetActive(ctx context.Context, tx *gorm.DB) (*domain.CertificateTemplate, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out domain.CertificateTemplate
	if err := t.WithContext(ctx).
		Where("active = ?", true).
		Order("updated_at DESC").
		First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *certificateTemplateRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.CertificateTemplate) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *certificateTemplateRepo) Update(ctx context.Context, tx *gorm.DB, row *domain.CertificateTemplate) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}
