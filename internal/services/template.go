package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	goredis "github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/clients/redis"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// TemplateUpdate carries the editable fields of the global certificate
// template. Pointer fields distinguish "leave unchanged" from "set to zero".
type TemplateUpdate struct {
	BackgroundImage *string  `json:"backgroundImage"`
	PrimaryColor    *string  `json:"primaryColor"`
	CertPdfURL      *string  `json:"certPdfUrl"`
	CertNameX       *float64 `json:"certNameX"`
	CertNameY       *float64 `json:"certNameY"`
	CertDateX       *float64 `json:"certDateX"`
	CertDateY       *float64 `json:"certDateY"`
	CertIDX         *float64 `json:"certIdX"`
	CertIDY         *float64 `json:"certIdY"`
	CertFontSize    *int     `json:"certFontSize"`
}

type TemplateService interface {
	Get(ctx context.Context) (*domain.CertificateTemplate, error)
	Update(ctx context.Context, upd TemplateUpdate) (*domain.CertificateTemplate, error)
}

type templateService struct {
	db           *gorm.DB
	log          *logger.Logger
	templateRepo repos.CertificateTemplateRepo
	cache        *goredis.Cache
}

func NewTemplateService(db *gorm.DB, log *logger.Logger, templateRepo repos.CertificateTemplateRepo, cache *goredis.Cache) TemplateService {
	return &templateService{
		db:           db,
		log:          log.With("service", "TemplateService"),
		templateRepo: templateRepo,
		cache:        cache,
	}
}

func (s *templateService) Get(ctx context.Context) (*domain.CertificateTemplate, error) {
	tpl, err := s.templateRepo.GetActive(ctx, nil)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, apierr.NotFound("no active certificate template")
	}
	return tpl, nil
}

func (s *templateService) Update(ctx context.Context, upd TemplateUpdate) (*domain.CertificateTemplate, error) {
	if upd.CertFontSize != nil && *upd.CertFontSize <= 0 {
		return nil, apierr.Validation("certFontSize must be positive")
	}

	tpl, err := s.templateRepo.GetActive(ctx, nil)
	if err != nil {
		return nil, err
	}
	created := false
	if tpl == nil {
		tpl = &domain.CertificateTemplate{ID: uuid.New(), Active: true}
		created = true
	}

	if upd.BackgroundImage != nil {
		tpl.BackgroundImage = *upd.BackgroundImage
	}
	if upd.PrimaryColor != nil {
		tpl.PrimaryColor = *upd.PrimaryColor
	}
	if upd.CertPdfURL != nil {
		tpl.CertPdfURL = *upd.CertPdfURL
	}
	if upd.CertNameX != nil {
		tpl.CertNameX = *upd.CertNameX
	}
	if upd.CertNameY != nil {
		tpl.CertNameY = *upd.CertNameY
	}
	if upd.CertDateX != nil {
		tpl.CertDateX = *upd.CertDateX
	}
	if upd.CertDateY != nil {
		tpl.CertDateY = *upd.CertDateY
	}
	if upd.CertIDX != nil {
		tpl.CertIDX = *upd.CertIDX
	}
	if upd.CertIDY != nil {
		tpl.CertIDY = *upd.CertIDY
	}
	if upd.CertFontSize != nil {
		tpl.CertFontSize = *upd.CertFontSize
	}

	if created {
		err = s.templateRepo.Create(ctx, nil, tpl)
	} else {
		err = s.templateRepo.Update(ctx, nil, tpl)
	}
	if err != nil {
		return nil, err
	}

	// Renders depend on the template; drop them all.
	s.cache.Invalidate(ctx, renderCachePrefix)
	s.log.Info("certificate template updated", "templateId", tpl.ID)
	return tpl, nil
}
