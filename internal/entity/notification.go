package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NotificationLog is the persisted in-app alert shown to a user, mirroring
// the record the host platform keeps alongside the notification email.
type NotificationLog struct {
	ID           string    `json:"id"`
	Subject      string    `json:"subject"`
	Content      string    `json:"content"`
	ForUser      string    `json:"for_user"`
	Type         string    `json:"type"`
	DocumentType string    `json:"document_type"`
	DocumentName string    `json:"document_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewNotificationLog(forUser, subject, content, documentName string) *NotificationLog {
	return &NotificationLog{
		ID:           uuid.New().String(),
		Subject:      subject,
		Content:      content,
		ForUser:      forUser,
		Type:         "Alert",
		DocumentType: "Quotation",
		DocumentName: documentName,
		CreatedAt:    time.Now(),
	}
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *NotificationLog) error
}
