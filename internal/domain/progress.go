package domain

import (
	"time"

	"github.com/google/uuid"
)

// Approval states for project-type lessons. Material and quiz lessons stay at
// ApprovalNone for their whole lifetime.
const (
	ApprovalNone     = "none"
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// UserProgress is the single progress record per (user, lesson). Created
// lazily on first interaction and never deleted; admin decisions and quiz
// failures mutate it in place so the row doubles as an audit trail.
type UserProgress struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_lesson,unique,priority:1" json:"userId"`
	LessonID uuid.UUID `gorm:"type:uuid;not null;index:idx_user_lesson,unique,priority:2" json:"lessonId"`

	Completed bool `gorm:"column:completed;not null;default:false" json:"completed"`

	SubmissionFileURL   string `gorm:"column:submission_file_url" json:"submissionFileUrl,omitempty"`
	SubmissionDriveLink string `gorm:"column:submission_drive_link" json:"submissionDriveLink,omitempty"`
	ApprovalStatus      string `gorm:"column:approval_status;not null;default:'none'" json:"approvalStatus"`
	AdminNote           string `gorm:"column:admin_note;type:text" json:"adminNote,omitempty"`

	QuizFailedAt *time.Time `gorm:"column:quiz_failed_at" json:"quizFailedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Lesson *Lesson `gorm:"foreignKey:LessonID" json:"-"`
}

func (UserProgress) TableName() string { return "user_progress" }
