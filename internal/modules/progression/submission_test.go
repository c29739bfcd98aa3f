package progression

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

func projectLesson(allowZip, allowDrive bool) *domain.Lesson {
	return &domain.Lesson{
		ID:                   uuid.New(),
		Type:                 domain.LessonTypeProject,
		AllowZipSubmission:   allowZip,
		AllowDriveSubmission: allowDrive,
	}
}

func TestValidateSubmit(t *testing.T) {
	for _, tc := range []struct {
		name      string
		lesson    *domain.Lesson
		current   string
		fileURL   string
		driveLink string
		want      error
	}{
		{"first submission", projectLesson(true, true), domain.ApprovalNone, "f.zip", "", nil},
		{"resubmission after reject", projectLesson(true, true), domain.ApprovalRejected, "", "https://drive", nil},
		{"while pending", projectLesson(true, true), domain.ApprovalPending, "f.zip", "", ErrAlreadyPending},
		{"after approval", projectLesson(true, true), domain.ApprovalApproved, "f.zip", "", ErrAlreadyApproved},
		{"no pointers", projectLesson(true, true), domain.ApprovalNone, "", "", ErrEmptySubmission},
		{"zip not allowed", projectLesson(false, true), domain.ApprovalNone, "f.zip", "", ErrFileNotAllowed},
		{"link not allowed", projectLesson(true, false), domain.ApprovalNone, "", "https://drive", ErrLinkNotAllowed},
		{"not a project", &domain.Lesson{ID: uuid.New(), Type: domain.LessonTypeQuiz}, domain.ApprovalNone, "f.zip", "", ErrNotProjectLesson},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSubmit(tc.lesson, tc.current, tc.fileURL, tc.driveLink)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateDecision(t *testing.T) {
	for _, tc := range []struct {
		current string
		want    error
	}{
		{domain.ApprovalPending, nil},
		{domain.ApprovalApproved, ErrAlreadyApproved},
		{domain.ApprovalRejected, ErrNotPendingApproval},
		{domain.ApprovalNone, ErrNotPendingApproval},
	} {
		if err := ValidateDecision(tc.current); !errors.Is(err, tc.want) {
			t.Fatalf("state %q: expected %v, got %v", tc.current, tc.want, err)
		}
	}
}
