package domain

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is issued at most once per (user, path); the composite unique
// index is what makes concurrent duplicate issuance safe at the storage
// layer. PublicID is the opaque identifier printed on the document and used
// for public verification.
type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_path_cert,unique,priority:1" json:"userId"`
	LearningPathID uuid.UUID `gorm:"type:uuid;not null;index:idx_user_path_cert,unique,priority:2" json:"learningPathId"`
	PublicID       string    `gorm:"column:public_id;uniqueIndex;not null" json:"certificateId"`
	IssuedAt       time.Time `gorm:"column:issued_at;not null" json:"issuedAt"`

	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	LearningPath *LearningPath `gorm:"foreignKey:LearningPathID" json:"-"`
}

func (Certificate) TableName() string { return "certificate" }

// CertificateTemplate is the global default template configuration. A
// learning path may override any field through its Cert* columns; resolution
// happens in the certgen module, field by field.
type CertificateTemplate struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BackgroundImage string    `gorm:"column:background_image;type:text" json:"backgroundImage"`
	PrimaryColor    string    `gorm:"column:primary_color;default:'#2563eb'" json:"primaryColor"`
	CertPdfURL      string    `gorm:"column:cert_pdf_url;type:text" json:"certPdfUrl"`
	CertNameX       float64   `gorm:"column:cert_name_x" json:"certNameX"`
	CertNameY       float64   `gorm:"column:cert_name_y" json:"certNameY"`
	CertDateX       float64   `gorm:"column:cert_date_x" json:"certDateX"`
	CertDateY       float64   `gorm:"column:cert_date_y" json:"certDateY"`
	CertIDX         float64   `gorm:"column:cert_id_x" json:"certIdX"`
	CertIDY         float64   `gorm:"column:cert_id_y" json:"certIdY"`
	CertFontSize    int       `gorm:"column:cert_font_size;default:30" json:"certFontSize"`
	Active          bool      `gorm:"column:active;not null;default:true" json:"active"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (CertificateTemplate) TableName() string { return "certificate_template" }
