package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos/testutil"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

func TestCertificateRepoDuplicate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCertificateRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "cert@example.com")
	p := testutil.SeedPath(t, ctx, tx, "path")

	first := &domain.Certificate{
		ID:             uuid.New(),
		UserID:         u.ID,
		LearningPathID: p.ID,
		PublicID:       "AIOT-abc-0001",
		IssuedAt:       time.Now().UTC(),
	}
	if err := repo.Create(ctx, tx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &domain.Certificate{
		ID:             uuid.New(),
		UserID:         u.ID,
		LearningPathID: p.ID,
		PublicID:       "AIOT-abc-0002",
		IssuedAt:       time.Now().UTC(),
	}
	if err := repo.Create(ctx, tx, dup); !errors.Is(err, ErrDuplicateCertificate) {
		t.Fatalf("expected ErrDuplicateCertificate, got %v", err)
	}
}

func TestCertificateRepoLookups(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCertificateRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "lookup@example.com")
	p := testutil.SeedPath(t, ctx, tx, "path")

	cert := &domain.Certificate{
		ID:             uuid.New(),
		UserID:         u.ID,
		LearningPathID: p.ID,
		PublicID:       "AIOT-def-0001",
		IssuedAt:       time.Now().UTC(),
	}
	if err := repo.Create(ctx, tx, cert); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got, err := repo.GetByUserAndPath(ctx, tx, u.ID, p.ID); err != nil || got == nil || got.ID != cert.ID {
		t.Fatalf("GetByUserAndPath: got=%v err=%v", got, err)
	}
	got, err := repo.GetByPublicID(ctx, tx, "AIOT-def-0001")
	if err != nil || got == nil {
		t.Fatalf("GetByPublicID: got=%v err=%v", got, err)
	}
	if got.User == nil || got.LearningPath == nil {
		t.Fatalf("expected preloaded user and path on public lookup")
	}
	if miss, err := repo.GetByPublicID(ctx, tx, "AIOT-nope"); err != nil || miss != nil {
		t.Fatalf("miss should be nil, got=%v err=%v", miss, err)
	}

	rows, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("ListByUser: err=%v len=%d", err, len(rows))
	}

	if err := repo.DeleteByID(ctx, tx, cert.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if got, err := repo.GetByUserAndPath(ctx, tx, u.ID, p.ID); err != nil || got != nil {
		t.Fatalf("expected deleted, got=%v err=%v", got, err)
	}
}

func TestCertificateTemplateRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCertificateTemplateRepo(db, testutil.Logger(t))

	if got, err := repo.GetActive(ctx, tx); err != nil || got != nil {
		t.Fatalf("no template yet: got=%v err=%v", got, err)
	}

	tpl := testutil.SeedTemplate(t, ctx, tx)

	got, err := repo.GetActive(ctx, tx)
	if err != nil || got == nil || got.ID != tpl.ID {
		t.Fatalf("GetActive: got=%v err=%v", got, err)
	}

	got.PrimaryColor = "#16a34a"
	if err := repo.Update(ctx, tx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, err := repo.GetActive(ctx, tx)
	if err != nil || again.PrimaryColor != "#16a34a" {
		t.Fatalf("update not applied: got=%+v err=%v", again, err)
	}
}
