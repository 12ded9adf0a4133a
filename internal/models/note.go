package models

import "time"

// CreatedAt is stored as a local ISO-8601 string, stamped once at
// construction and never recomputed on update.
const createdAtLayout = "2006-01-02T15:04:05"

type Note struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserEmail      string `gorm:"column:user_email" json:"userEmail"`
	CreatedAt      string `gorm:"column:created_at" json:"createdAt"`
	Type           string `json:"type"`
	Text           string `json:"text"`
	Frequency      string `json:"frequency"`
	AttachmentName string `gorm:"column:attachment_name" json:"attachmentName"`
	AttachmentType string `gorm:"column:attachment_type" json:"attachmentType"`
	AttachmentData string `gorm:"column:attachment_data" json:"attachmentData"`
}

func (Note) TableName() string {
	return "notes"
}

// NewNote stamps the creation timestamp and applies the default frequency.
func NewNote(userEmail, noteType string) Note {
	return Note{
		UserEmail: userEmail,
		Type:      noteType,
		CreatedAt: time.Now().Format(createdAtLayout),
		Frequency: "never",
	}
}
