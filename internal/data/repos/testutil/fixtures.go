package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:       uuid.New(),
		Username: email,
		Email:    email,
		Password: "pw",
		Role:     domain.RoleUser,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedAdmin(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.User {
	tb.Helper()
	u := SeedUser(tb, ctx, tx, email)
	u.Role = domain.RoleAdmin
	if err := tx.WithContext(ctx).Save(u).Error; err != nil {
		tb.Fatalf("seed admin: %v", err)
	}
	return u
}

func SeedPath(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *domain.LearningPath {
	tb.Helper()
	p := &domain.LearningPath{
		ID:    uuid.New(),
		Title: title,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed path: %v", err)
	}
	return p
}

func SeedChapter(tb testing.TB, ctx context.Context, tx *gorm.DB, pathID uuid.UUID, index int) *domain.Chapter {
	tb.Helper()
	c := &domain.Chapter{
		ID:             uuid.New(),
		LearningPathID: pathID,
		Index:          index,
		Title:          fmt.Sprintf("chapter %d", index),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed chapter: %v", err)
	}
	return c
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, chapter *domain.Chapter, index int, lessonType string) *domain.Lesson {
	tb.Helper()
	l := &domain.Lesson{
		ID:             uuid.New(),
		ChapterID:      chapter.ID,
		LearningPathID: chapter.LearningPathID,
		Index:          index,
		Title:          fmt.Sprintf("lesson %d", index),
		Type:           lessonType,
	}
	if lessonType == domain.LessonTypeProject {
		l.AllowZipSubmission = true
		l.AllowDriveSubmission = true
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, index int, correct string) *domain.Question {
	tb.Helper()
	q := &domain.Question{
		ID:            uuid.New(),
		LessonID:      lessonID,
		Index:         index,
		Prompt:        fmt.Sprintf("question %d", index),
		Options:       datatypes.JSON([]byte(`["a","b","c","d"]`)),
		CorrectAnswer: correct,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedProgress(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID, completed bool) *domain.UserProgress {
	tb.Helper()
	p := &domain.UserProgress{
		ID:             uuid.New(),
		UserID:         userID,
		LessonID:       lessonID,
		Completed:      completed,
		ApprovalStatus: domain.ApprovalNone,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed progress: %v", err)
	}
	return p
}

func SeedTemplate(tb testing.TB, ctx context.Context, tx *gorm.DB) *domain.CertificateTemplate {
	tb.Helper()
	t := &domain.CertificateTemplate{
		ID:           uuid.New(),
		Active:       true,
		PrimaryColor: "#2563eb",
		CertFontSize: 30,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed certificate template: %v", err)
	}
	return t
}
