package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	LessonTypeMaterial = "material"
	LessonTypeQuiz     = "quiz"
	LessonTypeProject  = "project"
)

// Lesson is one step inside a chapter. Its ordinal position within the whole
// path is derived by flattening the path, never stored here.
type Lesson struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID      uuid.UUID `gorm:"type:uuid;not null;index:idx_chapter_lesson,unique,priority:1" json:"chapterId"`
	LearningPathID uuid.UUID `gorm:"type:uuid;not null;index" json:"learningPathId"`
	Index          int       `gorm:"column:index;not null;index:idx_chapter_lesson,unique,priority:2" json:"index"`
	Title          string    `gorm:"column:title;not null" json:"title"`
	Type           string    `gorm:"column:type;not null;default:'material'" json:"type"`

	Content    string `gorm:"column:content;type:text" json:"content,omitempty"`
	VideoURL   string `gorm:"column:video_url" json:"videoUrl,omitempty"`
	PdfURL     string `gorm:"column:pdf_url;type:text" json:"pdfUrl,omitempty"`
	Difficulty string `gorm:"column:difficulty" json:"difficulty,omitempty"`
	Duration   int    `gorm:"column:duration" json:"duration,omitempty"`

	// Project submission policy.
	AllowZipSubmission   bool `gorm:"column:allow_zip_submission;not null;default:false" json:"allowZipSubmission"`
	AllowDriveSubmission bool `gorm:"column:allow_drive_submission;not null;default:false" json:"allowDriveSubmission"`

	Questions []Question `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Lesson) TableName() string { return "lesson" }

type Question struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID uuid.UUID `gorm:"type:uuid;not null;index:idx_lesson_question,unique,priority:1" json:"lessonId"`
	Index    int       `gorm:"column:index;not null;index:idx_lesson_question,unique,priority:2" json:"index"`
	Prompt   string    `gorm:"column:prompt;type:text;not null" json:"prompt"`

	// Ordered answer options, stored as a JSON array of strings.
	Options datatypes.JSON `gorm:"column:options" json:"options"`

	// Authoritative answer. Never serialized to learners; the quiz service
	// strips it before returning questions.
	CorrectAnswer string `gorm:"column:correct_answer;not null" json:"correctAnswer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Question) TableName() string { return "question" }
