package entity

import "time"

// Attachment is the metadata row for one stored project file. The binary
// content lives in object storage under ObjectKey.
type Attachment struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	ProjectID  string    `json:"project_id" gorm:"size:32;not null;index"`
	FileName   string    `json:"file_name" gorm:"size:255;not null"`
	ObjectKey  string    `json:"object_key" gorm:"size:500;not null"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type" gorm:"size:100"`
	UploadedBy string    `json:"uploaded_by" gorm:"size:64"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Attachment) TableName() string {
	return "project_attachments"
}
