package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos/testutil"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
)

type quizFixture struct {
	db       *gorm.DB
	user     *domain.User
	path     *domain.LearningPath
	material *domain.Lesson
	quiz     *domain.Lesson
	svc      *quizService
	progress repos.ProgressRepo
}

// newQuizFixture seeds a two-lesson path (material then a 5-question quiz)
// and wires the quiz service against the shared test database.
func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, db, uuid.NewString()+"@example.com")
	p := testutil.SeedPath(t, ctx, db, "quiz path")
	c := testutil.SeedChapter(t, ctx, db, p.ID, 1)
	material := testutil.SeedLesson(t, ctx, db, c, 1, domain.LessonTypeMaterial)
	quiz := testutil.SeedLesson(t, ctx, db, c, 2, domain.LessonTypeQuiz)
	for i := 1; i <= 5; i++ {
		testutil.SeedQuestion(t, ctx, db, quiz.ID, i, "a")
	}

	pathRepo := repos.NewPathRepo(db, log)
	lessonRepo := repos.NewLessonRepo(db, log)
	progressRepo := repos.NewProgressRepo(db, log)
	access := NewAccessService(db, log, pathRepo, lessonRepo, progressRepo)
	svc := NewQuizService(db, log, access, progressRepo).(*quizService)

	return &quizFixture{
		db:       db,
		user:     u,
		path:     p,
		material: material,
		quiz:     quiz,
		svc:      svc,
		progress: progressRepo,
	}
}

func (f *quizFixture) unlockQuiz(t *testing.T) {
	t.Helper()
	testutil.SeedProgress(t, context.Background(), f.db, f.user.ID, f.material.ID, true)
}

func (f *quizFixture) answers(t *testing.T, correct int) map[uuid.UUID]string {
	t.Helper()
	lesson, err := repos.NewLessonRepo(f.db, testutil.Logger(t)).GetWithQuestions(context.Background(), nil, f.quiz.ID)
	if err != nil || lesson == nil {
		t.Fatalf("load quiz: %v", err)
	}
	out := make(map[uuid.UUID]string, len(lesson.Questions))
	for i, q := range lesson.Questions {
		if i < correct {
			out[q.ID] = "a"
		} else {
			out[q.ID] = "b"
		}
	}
	return out
}

func TestQuizStartLockedLesson(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.StartAttempt(context.Background(), f.user.ID, f.quiz.ID)
	if apierr.Code(err) != apierr.CodeForbidden {
		t.Fatalf("expected forbidden for locked quiz, got %v", err)
	}
}

func TestQuizStartStripsAnswers(t *testing.T) {
	f := newQuizFixture(t)
	f.unlockQuiz(t)

	questions, err := f.svc.StartAttempt(context.Background(), f.user.ID, f.quiz.ID)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.CorrectAnswer != "" {
			t.Fatalf("correct answer leaked for question %s", q.ID)
		}
	}
}

func TestQuizSubmitPassAtThreshold(t *testing.T) {
	f := newQuizFixture(t)
	f.unlockQuiz(t)
	ctx := context.Background()

	out, err := f.svc.SubmitAttempt(ctx, f.user.ID, f.quiz.ID, f.answers(t, 4))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if !out.Passed || out.Percentage != 80 {
		t.Fatalf("4/5 should pass at 80%%, got %+v", out)
	}

	rec, err := f.progress.GetByUserAndLesson(ctx, nil, f.user.ID, f.quiz.ID)
	if err != nil || rec == nil {
		t.Fatalf("load progress: %v", err)
	}
	if !rec.Completed || rec.QuizFailedAt != nil {
		t.Fatalf("pass should complete and clear failure, got %+v", rec)
	}
}

func TestQuizSubmitFailSetsCooldown(t *testing.T) {
	f := newQuizFixture(t)
	f.unlockQuiz(t)
	ctx := context.Background()

	base := time.Now().UTC()
	f.svc.now = func() time.Time { return base }

	out, err := f.svc.SubmitAttempt(ctx, f.user.ID, f.quiz.ID, f.answers(t, 3))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if out.Passed || out.Percentage != 60 {
		t.Fatalf("3/5 should fail at 60%%, got %+v", out)
	}
	if !out.Cooldown.OnCooldown || out.Cooldown.RemainingSeconds != 180 {
		t.Fatalf("expected full cooldown, got %+v", out.Cooldown)
	}

	// A new attempt during cooldown is rejected.
	f.svc.now = func() time.Time { return base.Add(10 * time.Second) }
	if _, err := f.svc.StartAttempt(ctx, f.user.ID, f.quiz.ID); apierr.Code(err) != apierr.CodeConflict {
		t.Fatalf("expected conflict during cooldown, got %v", err)
	}
	if _, err := f.svc.SubmitAttempt(ctx, f.user.ID, f.quiz.ID, f.answers(t, 3)); apierr.Code(err) != apierr.CodeConflict {
		t.Fatalf("expected conflict during cooldown, got %v", err)
	}

	// Cooldown is reported, not extended, while it runs.
	cd, err := f.svc.GetCooldown(ctx, f.user.ID, f.quiz.ID)
	if err != nil {
		t.Fatalf("GetCooldown: %v", err)
	}
	if cd.RemainingSeconds != 170 {
		t.Fatalf("expected 170s remaining, got %+v", cd)
	}

	// After expiry the quiz opens again and a pass clears the failure mark.
	f.svc.now = func() time.Time { return base.Add(181 * time.Second) }
	out, err = f.svc.SubmitAttempt(ctx, f.user.ID, f.quiz.ID, f.answers(t, 5))
	if err != nil {
		t.Fatalf("SubmitAttempt after cooldown: %v", err)
	}
	if !out.Passed {
		t.Fatalf("expected pass, got %+v", out)
	}
	cd, _ = f.svc.GetCooldown(ctx, f.user.ID, f.quiz.ID)
	if cd.OnCooldown {
		t.Fatalf("completed record must not report cooldown, got %+v", cd)
	}
}

func TestQuizSubmitOnMaterialLesson(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.SubmitAttempt(context.Background(), f.user.ID, f.material.ID, nil)
	if apierr.Code(err) != apierr.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuizUnknownLesson(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.StartAttempt(context.Background(), f.user.ID, uuid.New())
	if apierr.Code(err) != apierr.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
