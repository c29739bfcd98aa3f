package progression

import (
	"errors"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

// Submission state machine violations. Callers translate these into API
// conflict/validation errors; the transitions themselves never silently
// mutate state.
var (
	ErrNotProjectLesson   = errors.New("lesson does not accept submissions")
	ErrEmptySubmission    = errors.New("submission needs a file or a drive link")
	ErrFileNotAllowed     = errors.New("lesson does not accept archive uploads")
	ErrLinkNotAllowed     = errors.New("lesson does not accept external links")
	ErrAlreadyPending     = errors.New("submission is already pending review")
	ErrAlreadyApproved    = errors.New("submission is already approved")
	ErrNotPendingApproval = errors.New("submission is not pending review")
)

// ValidateSubmit checks a learner's (re)submission against the lesson policy
// and the current approval state. Allowed only from none or rejected; a
// pending submission is held for the admin's review window and an approved
// one is terminal.
func ValidateSubmit(lesson *domain.Lesson, current string, fileURL, driveLink string) error {
	if lesson == nil || lesson.Type != domain.LessonTypeProject {
		return ErrNotProjectLesson
	}
	switch current {
	case domain.ApprovalPending:
		return ErrAlreadyPending
	case domain.ApprovalApproved:
		return ErrAlreadyApproved
	}
	if fileURL == "" && driveLink == "" {
		return ErrEmptySubmission
	}
	if fileURL != "" && !lesson.AllowZipSubmission {
		return ErrFileNotAllowed
	}
	if driveLink != "" && !lesson.AllowDriveSubmission {
		return ErrLinkNotAllowed
	}
	return nil
}

// ValidateDecision gates the admin approve/reject transitions: both are legal
// only while the submission sits in pending.
func ValidateDecision(current string) error {
	switch current {
	case domain.ApprovalPending:
		return nil
	case domain.ApprovalApproved:
		return ErrAlreadyApproved
	default:
		return ErrNotPendingApproval
	}
}
