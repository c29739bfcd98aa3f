package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningPath is a published curriculum: an ordered list of chapters, each
// holding ordered lessons. The Cert* columns are the optional per-path
// certificate template override; zero values mean "fall back to the global
// template".
type LearningPath struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Difficulty  string    `gorm:"column:difficulty" json:"difficulty,omitempty"`
	Duration    int       `gorm:"column:duration" json:"duration,omitempty"`
	Thumbnail   string    `gorm:"column:thumbnail" json:"thumbnail,omitempty"`
	IsPremium   bool      `gorm:"column:is_premium;not null;default:false" json:"isPremium"`

	Chapters []Chapter `gorm:"foreignKey:LearningPathID;constraint:OnDelete:CASCADE" json:"chapters,omitempty"`

	CertBg       string  `gorm:"column:cert_bg;type:text" json:"certBg,omitempty"`
	CertColor    string  `gorm:"column:cert_color" json:"certColor,omitempty"`
	CertPdfURL   string  `gorm:"column:cert_pdf_url;type:text" json:"certPdfUrl,omitempty"`
	CertNameX    float64 `gorm:"column:cert_name_x" json:"certNameX"`
	CertNameY    float64 `gorm:"column:cert_name_y" json:"certNameY"`
	CertDateX    float64 `gorm:"column:cert_date_x" json:"certDateX"`
	CertDateY    float64 `gorm:"column:cert_date_y" json:"certDateY"`
	CertIDX      float64 `gorm:"column:cert_id_x" json:"certIdX"`
	CertIDY      float64 `gorm:"column:cert_id_y" json:"certIdY"`
	CertFontSize int     `gorm:"column:cert_font_size" json:"certFontSize"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (LearningPath) TableName() string { return "learning_path" }

type Chapter struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LearningPathID uuid.UUID `gorm:"type:uuid;not null;index:idx_path_chapter,unique,priority:1" json:"learningPathId"`
	Index          int       `gorm:"column:index;not null;index:idx_path_chapter,unique,priority:2" json:"index"`
	Title          string    `gorm:"column:title;not null" json:"title"`

	Lessons []Lesson `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"lessons,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Chapter) TableName() string { return "chapter" }
