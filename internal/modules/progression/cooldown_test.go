package progression

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

func TestCooldownActiveRightAfterFailure(t *testing.T) {
	now := time.Now()
	rec := &domain.UserProgress{LessonID: uuid.New(), QuizFailedAt: &now}

	st := Cooldown(rec, now.Add(10*time.Second))
	if !st.OnCooldown {
		t.Fatal("expected active cooldown 10s after a failure")
	}
	if st.RemainingSeconds != 170 {
		t.Fatalf("expected 170s remaining, got %d", st.RemainingSeconds)
	}
}

func TestCooldownExpiresAfterWindow(t *testing.T) {
	failedAt := time.Now()
	rec := &domain.UserProgress{LessonID: uuid.New(), QuizFailedAt: &failedAt}

	st := Cooldown(rec, failedAt.Add(181*time.Second))
	if st.OnCooldown || st.RemainingSeconds != 0 {
		t.Fatalf("cooldown should be over at t+181s, got %+v", st)
	}
}

func TestCooldownIgnoredOnceCompleted(t *testing.T) {
	failedAt := time.Now()
	rec := &domain.UserProgress{LessonID: uuid.New(), QuizFailedAt: &failedAt, Completed: true}

	if st := Cooldown(rec, failedAt.Add(time.Second)); st.OnCooldown {
		t.Fatal("a completed lesson must never report a cooldown")
	}
}

func TestCooldownNoRecordNoFailure(t *testing.T) {
	if st := Cooldown(nil, time.Now()); st.OnCooldown {
		t.Fatal("missing record must report no cooldown")
	}
	rec := &domain.UserProgress{LessonID: uuid.New()}
	if st := Cooldown(rec, time.Now()); st.OnCooldown {
		t.Fatal("record without a failure timestamp must report no cooldown")
	}
}
