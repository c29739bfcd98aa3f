package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos/testutil"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

func TestPathRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPathRepo(db, testutil.Logger(t))

	p := testutil.SeedPath(t, ctx, tx, "embedded systems")

	if got, err := repo.GetByID(ctx, tx, p.ID); err != nil || got == nil || got.ID != p.ID {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByID(ctx, tx, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID miss should be nil, got=%v err=%v", got, err)
	}

	if rows, err := repo.List(ctx, tx); err != nil || len(rows) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}

	if err := repo.UpdateFields(ctx, tx, p.ID, map[string]interface{}{"cert_color": "#ff0000"}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, err := repo.GetByID(ctx, tx, p.ID)
	if err != nil || got.CertColor != "#ff0000" {
		t.Fatalf("UpdateFields not applied: got=%+v err=%v", got, err)
	}
}

func TestPathRepoGetWithContentOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPathRepo(db, testutil.Logger(t))

	p := testutil.SeedPath(t, ctx, tx, "iot basics")
	// Seed out of order; the preload must bring them back sorted.
	c2 := testutil.SeedChapter(t, ctx, tx, p.ID, 2)
	c1 := testutil.SeedChapter(t, ctx, tx, p.ID, 1)
	testutil.SeedLesson(t, ctx, tx, c1, 2, domain.LessonTypeQuiz)
	testutil.SeedLesson(t, ctx, tx, c1, 1, domain.LessonTypeMaterial)
	testutil.SeedLesson(t, ctx, tx, c2, 1, domain.LessonTypeProject)

	got, err := repo.GetWithContent(ctx, tx, p.ID)
	if err != nil || got == nil {
		t.Fatalf("GetWithContent: got=%v err=%v", got, err)
	}
	if len(got.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(got.Chapters))
	}
	if got.Chapters[0].ID != c1.ID || got.Chapters[1].ID != c2.ID {
		t.Fatalf("chapters not ordered by index")
	}
	if len(got.Chapters[0].Lessons) != 2 || got.Chapters[0].Lessons[0].Index != 1 {
		t.Fatalf("lessons not ordered by index: %+v", got.Chapters[0].Lessons)
	}
}
