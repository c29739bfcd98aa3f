package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos/testutil"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/modules/certgen"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/assets"
)

type certFixture struct {
	db     *gorm.DB
	user   *domain.User
	path   *domain.LearningPath
	lesson *domain.Lesson
	svc    CertificateService
}

type emptySource struct{}

func (emptySource) Fetch(context.Context, string) ([]byte, error) {
	return nil, context.Canceled
}

var _ assets.Source = emptySource{}

func newCertFixture(t *testing.T) *certFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, db, uuid.NewString()+"@example.com")
	p := testutil.SeedPath(t, ctx, db, "certifiable path")
	c := testutil.SeedChapter(t, ctx, db, p.ID, 1)
	lesson := testutil.SeedLesson(t, ctx, db, c, 1, domain.LessonTypeMaterial)

	pathRepo := repos.NewPathRepo(db, log)
	lessonRepo := repos.NewLessonRepo(db, log)
	progressRepo := repos.NewProgressRepo(db, log)
	access := NewAccessService(db, log, pathRepo, lessonRepo, progressRepo)

	renderer, err := certgen.NewRenderer(log, certgen.DefaultRenderConfig(), emptySource{})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	svc := NewCertificateService(
		db, log, access,
		pathRepo,
		repos.NewUserRepo(db, log),
		repos.NewCertificateRepo(db, log),
		repos.NewCertificateTemplateRepo(db, log),
		renderer,
		nil, // no redis in tests; the cache degrades to a no-op
	)

	return &certFixture{db: db, user: u, path: p, lesson: lesson, svc: svc}
}

func (f *certFixture) completePath(t *testing.T) {
	t.Helper()
	testutil.SeedProgress(t, context.Background(), f.db, f.user.ID, f.lesson.ID, true)
}

func TestCertificateIssueRequiresCompletion(t *testing.T) {
	f := newCertFixture(t)

	_, err := f.svc.IssueOrFetch(context.Background(), f.user.ID, f.path.ID)
	if apierr.Code(err) != apierr.CodeForbidden {
		t.Fatalf("expected forbidden before completion, got %v", err)
	}
}

func TestCertificateIssueOnce(t *testing.T) {
	f := newCertFixture(t)
	f.completePath(t)
	ctx := context.Background()

	first, err := f.svc.IssueOrFetch(ctx, f.user.ID, f.path.ID)
	if err != nil {
		t.Fatalf("IssueOrFetch: %v", err)
	}
	if !strings.HasPrefix(first.PublicID, "AIOT-"+f.path.ID.String()+"-") {
		t.Fatalf("unexpected certificate id %q", first.PublicID)
	}

	second, err := f.svc.IssueOrFetch(ctx, f.user.ID, f.path.ID)
	if err != nil {
		t.Fatalf("IssueOrFetch again: %v", err)
	}
	if second.ID != first.ID || second.PublicID != first.PublicID {
		t.Fatalf("repeat issuance must return the same certificate")
	}
}

func TestCertificateIssueConcurrent(t *testing.T) {
	f := newCertFixture(t)
	f.completePath(t)
	ctx := context.Background()

	const callers = 8
	results := make([]*domain.Certificate, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.svc.IssueOrFetch(ctx, f.user.ID, f.path.ID)
		}(i)
	}
	wg.Wait()

	var publicID string
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if publicID == "" {
			publicID = results[i].PublicID
		}
		if results[i].PublicID != publicID {
			t.Fatalf("callers got different certificates: %q vs %q", results[i].PublicID, publicID)
		}
	}
}

func TestCertificateVerify(t *testing.T) {
	f := newCertFixture(t)
	f.completePath(t)
	ctx := context.Background()

	cert, err := f.svc.IssueOrFetch(ctx, f.user.ID, f.path.ID)
	if err != nil {
		t.Fatalf("IssueOrFetch: %v", err)
	}

	v, err := f.svc.Verify(ctx, cert.PublicID)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !v.Valid || v.LearnerName != f.user.Username || v.PathTitle != f.path.Title {
		t.Fatalf("unexpected verification: %+v", v)
	}

	miss, err := f.svc.Verify(ctx, "AIOT-nope")
	if err != nil {
		t.Fatalf("Verify miss: %v", err)
	}
	if miss.Valid {
		t.Fatalf("unknown id must not verify")
	}
}

func TestCertificateRenderOwnership(t *testing.T) {
	f := newCertFixture(t)
	f.completePath(t)
	ctx := context.Background()

	cert, err := f.svc.IssueOrFetch(ctx, f.user.ID, f.path.ID)
	if err != nil {
		t.Fatalf("IssueOrFetch: %v", err)
	}

	// No template configured anywhere: built-in layout, PNG.
	out, err := f.svc.Render(ctx, cert.PublicID, f.user.ID, false)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out.ContentType != "image/png" || len(out.Bytes) == 0 {
		t.Fatalf("unexpected render output: %q %d bytes", out.ContentType, len(out.Bytes))
	}

	// Deterministic: a second render returns identical bytes.
	again, err := f.svc.Render(ctx, cert.PublicID, f.user.ID, false)
	if err != nil {
		t.Fatalf("Render again: %v", err)
	}
	if string(again.Bytes) != string(out.Bytes) {
		t.Fatalf("render is not deterministic")
	}

	if _, err := f.svc.Render(ctx, cert.PublicID, uuid.New(), false); apierr.Code(err) != apierr.CodeForbidden {
		t.Fatalf("expected forbidden for other users, got %v", err)
	}
	if _, err := f.svc.Render(ctx, cert.PublicID, uuid.New(), true); err != nil {
		t.Fatalf("admin render: %v", err)
	}

	if err := f.svc.Revoke(ctx, cert.ID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := f.svc.Render(ctx, cert.PublicID, f.user.ID, false); apierr.Code(err) != apierr.CodeNotFound {
		t.Fatalf("expected not found after revocation, got %v", err)
	}
}
