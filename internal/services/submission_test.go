package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos/testutil"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
)

type submissionFixture struct {
	db      *gorm.DB
	user    *domain.User
	project *domain.Lesson
	svc     SubmissionService
	access  AccessService
}

// newSubmissionFixture seeds a single-lesson path whose only lesson is a
// project accepting both archive uploads and external links.
func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, db, uuid.NewString()+"@example.com")
	p := testutil.SeedPath(t, ctx, db, "project path")
	c := testutil.SeedChapter(t, ctx, db, p.ID, 1)
	project := testutil.SeedLesson(t, ctx, db, c, 1, domain.LessonTypeProject)

	pathRepo := repos.NewPathRepo(db, log)
	lessonRepo := repos.NewLessonRepo(db, log)
	progressRepo := repos.NewProgressRepo(db, log)
	access := NewAccessService(db, log, pathRepo, lessonRepo, progressRepo)
	svc := NewSubmissionService(db, log, access, progressRepo)

	return &submissionFixture{db: db, user: u, project: project, svc: svc, access: access}
}

func TestSubmissionLifecycle(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	rec, err := f.svc.Submit(ctx, f.user.ID, f.project.ID, "submissions/v1.zip", "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.ApprovalStatus != domain.ApprovalPending {
		t.Fatalf("expected pending, got %q", rec.ApprovalStatus)
	}

	// Second submit while pending is a conflict.
	if _, err := f.svc.Submit(ctx, f.user.ID, f.project.ID, "submissions/v2.zip", ""); apierr.Code(err) != apierr.CodeConflict {
		t.Fatalf("expected conflict while pending, got %v", err)
	}

	rejected, err := f.svc.Reject(ctx, rec.ID, "missing readme")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.ApprovalStatus != domain.ApprovalRejected || rejected.AdminNote != "missing readme" {
		t.Fatalf("reject not recorded: %+v", rejected)
	}

	// Rejection reopens submission.
	rec, err = f.svc.Submit(ctx, f.user.ID, f.project.ID, "", "https://drive.example/v2")
	if err != nil {
		t.Fatalf("resubmit after reject: %v", err)
	}

	approved, err := f.svc.Approve(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.ApprovalStatus != domain.ApprovalApproved || !approved.Completed {
		t.Fatalf("approve should complete the lesson: %+v", approved)
	}

	// Approved is terminal for both learner and admin.
	if _, err := f.svc.Submit(ctx, f.user.ID, f.project.ID, "submissions/v3.zip", ""); apierr.Code(err) != apierr.CodeConflict {
		t.Fatalf("expected conflict after approval, got %v", err)
	}
	if _, err := f.svc.Approve(ctx, rec.ID); apierr.Code(err) != apierr.CodeConflict {
		t.Fatalf("expected conflict approving twice, got %v", err)
	}
	if _, err := f.svc.Reject(ctx, rec.ID, "too late"); apierr.Code(err) != apierr.CodeConflict {
		t.Fatalf("expected conflict rejecting approved, got %v", err)
	}
}

func TestSubmissionValidation(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Submit(ctx, f.user.ID, f.project.ID, "", ""); apierr.Code(err) != apierr.CodeValidation {
		t.Fatalf("expected validation for empty submission, got %v", err)
	}

	if _, err := f.svc.Approve(ctx, uuid.New()); apierr.Code(err) != apierr.CodeNotFound {
		t.Fatalf("expected not found for unknown submission, got %v", err)
	}
}

func TestSubmissionListPending(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Submit(ctx, f.user.ID, f.project.ID, "submissions/list.zip", ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	rows, err := f.svc.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	found := false
	for _, r := range rows {
		if r.UserID == f.user.ID && r.LessonID == f.project.ID {
			found = true
			if r.User == nil || r.Lesson == nil {
				t.Fatalf("expected user and lesson context on pending row")
			}
		}
	}
	if !found {
		t.Fatalf("submitted row missing from pending list")
	}
}
