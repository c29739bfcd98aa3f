package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	goredis "github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/clients/redis"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/modules/certgen"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

const renderCachePrefix = "cert:render:"

// Verification is the public lookup result for a certificate ID.
type Verification struct {
	Valid         bool      `json:"valid"`
	CertificateID string    `json:"certificateId,omitempty"`
	LearnerName   string    `json:"learnerName,omitempty"`
	PathTitle     string    `json:"pathTitle,omitempty"`
	IssuedAt      time.Time `json:"issuedAt,omitempty"`
}

// CertificateService issues and serves certificates. Issuance happens at
// most once per (user, path): a singleflight group coalesces concurrent
// requests in-process and the unique index settles races across processes.
type CertificateService interface {
	IssueOrFetch(ctx context.Context, userID, pathID uuid.UUID) (*domain.Certificate, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error)
	ListAll(ctx context.Context) ([]*domain.Certificate, error)
	Verify(ctx context.Context, publicID string) (*Verification, error)
	Render(ctx context.Context, publicID string, requesterID uuid.UUID, isAdmin bool) (certgen.Output, error)
	Revoke(ctx context.Context, certificateID uuid.UUID) error
}

type certificateService struct {
	db            *gorm.DB
	log           *logger.Logger
	accessService AccessService
	pathRepo      repos.PathRepo
	userRepo      repos.UserRepo
	certRepo      repos.CertificateRepo
	templateRepo  repos.CertificateTemplateRepo
	renderer      *certgen.Renderer
	cache         *goredis.Cache
	issueGroup    singleflight.Group
	now           func() time.Time
}

func NewCertificateService(
	db *gorm.DB,
	log *logger.Logger,
	accessService AccessService,
	pathRepo repos.PathRepo,
	userRepo repos.UserRepo,
	certRepo repos.CertificateRepo,
	templateRepo repos.CertificateTemplateRepo,
	renderer *certgen.Renderer,
	cache *goredis.Cache,
) CertificateService {
	return &certificateService{
		db:            db,
		log:           log.With("service", "CertificateService"),
		accessService: accessService,
		pathRepo:      pathRepo,
		userRepo:      userRepo,
		certRepo:      certRepo,
		templateRepo:  templateRepo,
		renderer:      renderer,
		cache:         cache,
		now:           time.Now,
	}
}

func (s *certificateService) IssueOrFetch(ctx context.Context, userID, pathID uuid.UUID) (*domain.Certificate, error) {
	if existing, err := s.certRepo.GetByUserAndPath(ctx, nil, userID, pathID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	key := fmt.Sprintf("%s:%s", userID, pathID)
	v, err, _ := s.issueGroup.Do(key, func() (interface{}, error) {
		return s.issue(ctx, userID, pathID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Certificate), nil
}

func (s *certificateService) issue(ctx context.Context, userID, pathID uuid.UUID) (*domain.Certificate, error) {
	// Re-check inside the flight; a racing call may have issued already.
	if existing, err := s.certRepo.GetByUserAndPath(ctx, nil, userID, pathID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	complete, err := s.accessService.PathComplete(ctx, nil, userID, pathID)
	if err != nil {
		return nil, err
	}
	if !complete {
		return nil, apierr.Forbidden("learning path %s is not completed", pathID)
	}

	cert := &domain.Certificate{
		ID:             uuid.New(),
		UserID:         userID,
		LearningPathID: pathID,
		PublicID:       newPublicID(pathID),
		IssuedAt:       s.now().UTC(),
	}
	if err := s.certRepo.Create(ctx, nil, cert); err != nil {
		// Lost the cross-process race; the existing row wins.
		if errors.Is(err, repos.ErrDuplicateCertificate) {
			return s.certRepo.GetByUserAndPath(ctx, nil, userID, pathID)
		}
		return nil, err
	}
	s.log.Info("certificate issued", "userId", userID, "pathId", pathID, "certificateId", cert.PublicID)
	return cert, nil
}

func newPublicID(pathID uuid.UUID) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("AIOT-%s-%s", pathID, hex.EncodeToString(buf))
}

func (s *certificateService) ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
	return s.certRepo.ListByUser(ctx, nil, userID)
}

func (s *certificateService) ListAll(ctx context.Context) ([]*domain.Certificate, error) {
	return s.certRepo.ListAll(ctx, nil)
}

func (s *certificateService) Verify(ctx context.Context, publicID string) (*Verification, error) {
	cert, err := s.certRepo.GetByPublicID(ctx, nil, publicID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return &Verification{Valid: false}, nil
	}
	out := &Verification{
		Valid:         true,
		CertificateID: cert.PublicID,
		IssuedAt:      cert.IssuedAt,
	}
	if cert.User != nil {
		out.LearnerName = cert.User.Username
	}
	if cert.LearningPath != nil {
		out.PathTitle = cert.LearningPath.Title
	}
	return out, nil
}

func (s *certificateService) Render(ctx context.Context, publicID string, requesterID uuid.UUID, isAdmin bool) (certgen.Output, error) {
	cert, err := s.certRepo.GetByPublicID(ctx, nil, publicID)
	if err != nil {
		return certgen.Output{}, err
	}
	if cert == nil {
		return certgen.Output{}, apierr.NotFound("certificate %s not found", publicID)
	}
	if !isAdmin && cert.UserID != requesterID {
		return certgen.Output{}, apierr.Forbidden("certificate %s belongs to another user", publicID)
	}

	// Output is deterministic for a given template, so cached bytes are
	// always identical to a fresh render.
	cacheKey := renderCachePrefix + publicID
	if b, ok := s.cache.GetBytes(ctx, cacheKey); ok {
		return certgen.Output{Bytes: b, ContentType: sniffContentType(b)}, nil
	}

	global, err := s.templateRepo.GetActive(ctx, nil)
	if err != nil {
		return certgen.Output{}, err
	}
	tpl := certgen.ResolveTemplate(global, cert.LearningPath)

	in := certgen.Input{
		CertificateID: cert.PublicID,
		IssuedAt:      cert.IssuedAt,
	}
	if cert.User != nil {
		in.LearnerName = cert.User.Username
	}
	if cert.LearningPath != nil {
		in.CourseTitle = cert.LearningPath.Title
	}

	out, err := s.renderer.Render(ctx, tpl, in)
	if err != nil {
		return certgen.Output{}, err
	}
	s.cache.SetBytes(ctx, cacheKey, out.Bytes)
	return out, nil
}

func (s *certificateService) Revoke(ctx context.Context, certificateID uuid.UUID) error {
	if err := s.certRepo.DeleteByID(ctx, nil, certificateID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, renderCachePrefix)
	s.log.Info("certificate revoked", "certificateId", certificateID)
	return nil
}

func sniffContentType(b []byte) string {
	if len(b) >= 4 && string(b[:4]) == "%PDF" {
		return "application/pdf"
	}
	return "image/png"
}
