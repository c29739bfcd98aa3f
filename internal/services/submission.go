package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/data/repos"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/modules/progression"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// SubmissionService runs the project review workflow: learners hand in a
// file reference or an external link, admins approve or reject. Uploading
// the file itself happens elsewhere; only the pointer is stored here.
type SubmissionService interface {
	Submit(ctx context.Context, userID, lessonID uuid.UUID, fileURL, driveLink string) (*domain.UserProgress, error)
	ListPending(ctx context.Context) ([]*domain.UserProgress, error)
	Approve(ctx context.Context, progressID uuid.UUID) (*domain.UserProgress, error)
	Reject(ctx context.Context, progressID uuid.UUID, adminNote string) (*domain.UserProgress, error)
}

type submissionService struct {
	db            *gorm.DB
	log           *logger.Logger
	accessService AccessService
	progressRepo  repos.ProgressRepo
}

func NewSubmissionService(db *gorm.DB, log *logger.Logger, accessService AccessService, progressRepo repos.ProgressRepo) SubmissionService {
	return &submissionService{
		db:            db,
		log:           log.With("service", "SubmissionService"),
		accessService: accessService,
		progressRepo:  progressRepo,
	}
}

func (s *submissionService) Submit(ctx context.Context, userID, lessonID uuid.UUID, fileURL, driveLink string) (*domain.UserProgress, error) {
	fileURL = strings.TrimSpace(fileURL)
	driveLink = strings.TrimSpace(driveLink)

	var out *domain.UserProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, rec, state, err := s.accessService.ResolveLesson(ctx, tx, userID, lessonID)
		if err != nil {
			return err
		}
		if state != progression.Unlocked {
			return apierr.Forbidden("lesson %s is locked", lessonID)
		}

		current := domain.ApprovalNone
		if rec != nil {
			// Re-read under lock so two submits cannot both pass validation.
			rec, err = s.progressRepo.GetByUserAndLessonForUpdate(ctx, tx, userID, lessonID)
			if err != nil {
				return err
			}
			current = rec.ApprovalStatus
		}

		if err := progression.ValidateSubmit(lesson, current, fileURL, driveLink); err != nil {
			return mapSubmissionErr(err)
		}

		if rec == nil {
			rec = &domain.UserProgress{
				ID:       uuid.New(),
				UserID:   userID,
				LessonID: lessonID,
			}
		}
		rec.SubmissionFileURL = fileURL
		rec.SubmissionDriveLink = driveLink
		rec.ApprovalStatus = domain.ApprovalPending
		rec.AdminNote = ""
		rec.Completed = false
		if err := s.progressRepo.Upsert(ctx, tx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("submission received", "userId", userID, "lessonId", lessonID)
	return out, nil
}

func (s *submissionService) ListPending(ctx context.Context) ([]*domain.UserProgress, error) {
	return s.progressRepo.ListPending(ctx, nil)
}

func (s *submissionService) Approve(ctx context.Context, progressID uuid.UUID) (*domain.UserProgress, error) {
	return s.decide(ctx, progressID, domain.ApprovalApproved, "")
}

func (s *submissionService) Reject(ctx context.Context, progressID uuid.UUID, adminNote string) (*domain.UserProgress, error) {
	return s.decide(ctx, progressID, domain.ApprovalRejected, strings.TrimSpace(adminNote))
}

func (s *submissionService) decide(ctx context.Context, progressID uuid.UUID, decision, adminNote string) (*domain.UserProgress, error) {
	var out *domain.UserProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.progressRepo.GetByIDForUpdate(ctx, tx, progressID)
		if err != nil {
			return err
		}
		if rec == nil {
			return apierr.NotFound("submission %s not found", progressID)
		}
		if err := progression.ValidateDecision(rec.ApprovalStatus); err != nil {
			return mapSubmissionErr(err)
		}

		rec.ApprovalStatus = decision
		rec.AdminNote = adminNote
		rec.Completed = decision == domain.ApprovalApproved
		if err := s.progressRepo.Update(ctx, tx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("submission decided", "progressId", progressID, "decision", decision)
	return out, nil
}

func mapSubmissionErr(err error) error {
	switch {
	case errors.Is(err, progression.ErrAlreadyPending),
		errors.Is(err, progression.ErrAlreadyApproved),
		errors.Is(err, progression.ErrNotPendingApproval):
		return apierr.Conflict("%s", err.Error())
	case errors.Is(err, progression.ErrNotProjectLesson),
		errors.Is(err, progression.ErrEmptySubmission),
		errors.Is(err, progression.ErrFileNotAllowed),
		errors.Is(err, progression.ErrLinkNotAllowed):
		return apierr.Validation("%s", err.Error())
	}
	return err
}
