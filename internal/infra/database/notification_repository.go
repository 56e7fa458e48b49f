package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/roothome/esign-bridge/internal/entity"
)

type NotificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.NotificationLog) error {
	query := `
		INSERT INTO notification_logs
			(id, subject, content, for_user, type, document_type, document_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		n.ID,
		n.Subject,
		n.Content,
		n.ForUser,
		n.Type,
		n.DocumentType,
		n.DocumentName,
		n.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Duplicate id: uuid collision cannot realistically happen, a
			// retry with the same record can. Treat as already written.
			return nil
		}

		log.Printf("notification insert failed: %v", err)
		return err
	}

	return nil
}
