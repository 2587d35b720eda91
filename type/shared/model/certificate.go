package model

import "time"

const TableNameCertificate = "certificates"

// Certificate is the metadata stored for one issued certificate.
type Certificate struct {
	ID            string    `gorm:"column:id;primaryKey" bson:"id" json:"id"`
	Name          string    `gorm:"column:name;not null" bson:"name" json:"name"`
	Course        string    `gorm:"column:course;not null" bson:"course" json:"course"`
	Date          string    `gorm:"column:date;not null" bson:"date" json:"date"`
	CertType      string    `gorm:"column:cert_type;not null" bson:"certType" json:"certType"`
	PositionType  string    `gorm:"column:position_type" bson:"positionType" json:"positionType"`
	PositionValue string    `gorm:"column:position_value" bson:"positionValue" json:"positionValue"`
	CustomTitle   string    `gorm:"column:custom_title" bson:"customTitle" json:"customTitle"`
	PdfPath       string    `gorm:"column:pdf_path;not null" bson:"pdf_path" json:"pdf_path"`
	ArchiveURL    string    `gorm:"column:archive_url" bson:"archive_url,omitempty" json:"archive_url,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" bson:"created_at" json:"created_at"`
}

func (*Certificate) TableName() string {
	return TableNameCertificate
}
