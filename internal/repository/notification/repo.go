package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoNotificationsFound = errors.New("no notifications found")
	// ErrStatusConflict means the record was not in the status the transition requires.
	ErrStatusConflict = errors.New("notification status conflict")
)

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const notificationColumns = `
		id, event_type, channel, recipient_id, recipient_address, template_id, template_name,
		subject, body_preview, status, message_id, error_reason, error_code, retry_count,
		max_retries, next_retry_at, context_data, correlation_id, parent_id,
		created_at, updated_at, sent_at, delivered_at`

// CreateNotification inserts a new notification into the database and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    event_type, channel, recipient_id, recipient_address, template_id, template_name,
		    subject, body_preview, status, retry_count, max_retries, next_retry_at,
		    context_data, correlation_id, parent_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id;
    `

	contextData, err := json.Marshal(n.Context)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal context data: %w", err)
	}

	err = r.db.QueryRowContext(
		ctx, query,
		n.EventType, n.Channel, n.RecipientID, n.RecipientAddress, nullUUID(n.TemplateID), nullString(n.TemplateName),
		nullString(n.Subject), n.BodyPreview, n.Status, n.RetryCount, n.MaxRetries, nullTime(n.NextRetryAt),
		contextData, n.CorrelationID, nullUUID(n.ParentID),
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n.ID, nil
}

// GetNotificationByID retrieves a full notification record.
func (r *Repository) GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetNotificationStatusByID retrieves the status of a notification by its ID.
func (r *Repository) GetNotificationStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return model.Status(status), nil
}

// GetNotificationsByCorrelationID lists the records spawned by one event, oldest first.
func (r *Repository) GetNotificationsByCorrelationID(ctx context.Context, correlationID uuid.UUID) ([]model.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		WHERE correlation_id = $1
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, correlationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	if len(notifications) == 0 {
		return nil, ErrNoNotificationsFound
	}

	return notifications, nil
}

// ClaimForSending moves a queued or retry-scheduled record to sending. It
// reports false when the record is in any other status, which makes a
// redelivered send instruction a no-op.
func (r *Repository) ClaimForSending(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE notifications
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = ANY($3);
    `

	res, err := r.db.ExecContext(
		ctx, query, model.StatusSending, id,
		pq.Array([]string{string(model.StatusQueued), string(model.StatusRetryScheduled)}),
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows == 1, nil
}

// MarkSent records a successful send of a record in sending.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, messageID string, sentAt time.Time) error {
	query := `
		UPDATE notifications
		SET status = $1, message_id = $2, sent_at = $3, next_retry_at = NULL, updated_at = NOW()
		WHERE id = $4 AND status = $5;
    `

	return r.transition(ctx, query, model.StatusSent, nullString(messageID), sentAt, id, model.StatusSending)
}

// MarkDelivered records a delivery confirmation of a sent record.
func (r *Repository) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) error {
	query := `
		UPDATE notifications
		SET status = $1, delivered_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4;
    `

	return r.transition(ctx, query, model.StatusDelivered, deliveredAt, id, model.StatusSent)
}

// ScheduleRetry stores a failed attempt and the time of the next one.
func (r *Repository) ScheduleRetry(
	ctx context.Context, id uuid.UUID, retryCount int, nextRetryAt time.Time, reason, code string,
) error {
	query := `
		UPDATE notifications
		SET status = $1, retry_count = $2, next_retry_at = $3, error_reason = $4, error_code = $5, updated_at = NOW()
		WHERE id = $6 AND status = $7;
    `

	return r.transition(
		ctx, query, model.StatusRetryScheduled, retryCount, nextRetryAt, nullString(reason), nullString(code),
		id, model.StatusSending,
	)
}

// MarkFailed moves a record in sending to the terminal failed status. The
// record stays fallback-pending until ResolveFallback is called for it.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason, code string) error {
	query := `
		UPDATE notifications
		SET status = $1, error_reason = $2, error_code = $3, next_retry_at = NULL,
		    fallback_pending = TRUE, updated_at = NOW()
		WHERE id = $4 AND status = $5;
    `

	return r.transition(ctx, query, model.StatusFailed, nullString(reason), nullString(code), id, model.StatusSending)
}

// ResolveFallback clears the fallback-pending flag of a failed record once
// its fallback was queued or the chain turned out to be exhausted.
func (r *Repository) ResolveFallback(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET fallback_pending = FALSE, updated_at = NOW()
		WHERE id = $1 AND status = $2;
    `

	return r.transition(ctx, query, id, model.StatusFailed)
}

// ReleaseStaleClaims returns records stuck in sending since before
// staleBefore to the state machine. The abandoned attempt counts as a
// failed one: records with retries left become retry-scheduled and due at
// dueAt, the others fail and wait for their fallback. It returns the new
// status of every released record.
func (r *Repository) ReleaseStaleClaims(
	ctx context.Context, staleBefore, dueAt time.Time, reason, code string, limit int,
) (map[uuid.UUID]model.Status, error) {
	query := `
		UPDATE notifications
		SET status = CASE WHEN retry_count < max_retries THEN $1 ELSE $2 END,
		    next_retry_at = CASE WHEN retry_count < max_retries THEN $3::timestamptz END,
		    fallback_pending = (retry_count >= max_retries),
		    retry_count = LEAST(retry_count + 1, max_retries),
		    error_reason = $4, error_code = $5, updated_at = NOW()
		WHERE id IN (
		    SELECT id
		    FROM notifications
		    WHERE status = $6 AND updated_at < $7
		    ORDER BY updated_at
		    LIMIT $8
		    FOR UPDATE SKIP LOCKED
		)
		RETURNING id, status;
    `

	rows, err := r.db.QueryContext(
		ctx, query,
		model.StatusRetryScheduled, model.StatusFailed, dueAt, nullString(reason), nullString(code),
		model.StatusSending, staleBefore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to release stale claims: %w", err)
	}
	defer rows.Close()

	released := make(map[uuid.UUID]model.Status)
	for rows.Next() {
		var (
			id     uuid.UUID
			status string
		)
		if err := rows.Scan(&id, &status); err != nil {
			return nil, err
		}

		released[id] = model.Status(status)
	}

	return released, rows.Err()
}

// GetPendingFallbacks returns failed records whose fallback was neither
// queued nor resolved, failed before staleBefore, oldest first.
func (r *Repository) GetPendingFallbacks(ctx context.Context, staleBefore time.Time, limit int) ([]model.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications n
		WHERE n.status = $1 AND n.fallback_pending AND n.updated_at < $2
		  AND NOT EXISTS (SELECT 1 FROM notifications c WHERE c.parent_id = n.id)
		ORDER BY n.updated_at
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, model.StatusFailed, staleBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending fallbacks: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending fallbacks: %w", err)
	}

	return notifications, nil
}

// GetDueIDs returns queued and retry-scheduled records whose due time has
// passed, oldest due first.
func (r *Repository) GetDueIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM notifications
		WHERE status = ANY($1) AND next_retry_at <= $2
		ORDER BY next_retry_at
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(
		ctx, query,
		pq.Array([]string{string(model.StatusQueued), string(model.StatusRetryScheduled)}), now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get due notifications: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// transition runs a status update guarded by the current status. The id is
// the second to last argument and the expected status the last.
func (r *Repository) transition(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrStatusConflict
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(row rowScanner) (model.Notification, error) {
	var (
		n                                model.Notification
		templateID, parentID             uuid.NullUUID
		templateName, subject, messageID sql.NullString
		errorReason, errorCode           sql.NullString
		nextRetryAt, sentAt, deliveredAt sql.NullTime
		eventType, channel, status       string
		contextData                      []byte
	)

	err := row.Scan(
		&n.ID, &eventType, &channel, &n.RecipientID, &n.RecipientAddress, &templateID, &templateName,
		&subject, &n.BodyPreview, &status, &messageID, &errorReason, &errorCode, &n.RetryCount,
		&n.MaxRetries, &nextRetryAt, &contextData, &n.CorrelationID, &parentID,
		&n.CreatedAt, &n.UpdatedAt, &sentAt, &deliveredAt,
	)
	if err != nil {
		return model.Notification{}, err
	}

	n.EventType = model.EventType(eventType)
	n.Channel = model.Channel(channel)
	n.Status = model.Status(status)
	n.TemplateName = templateName.String
	n.Subject = subject.String
	n.MessageID = messageID.String
	n.ErrorReason = errorReason.String
	n.ErrorCode = errorCode.String

	if templateID.Valid {
		n.TemplateID = &templateID.UUID
	}
	if parentID.Valid {
		n.ParentID = &parentID.UUID
	}
	if nextRetryAt.Valid {
		n.NextRetryAt = &nextRetryAt.Time
	}
	if sentAt.Valid {
		n.SentAt = &sentAt.Time
	}
	if deliveredAt.Valid {
		n.DeliveredAt = &deliveredAt.Time
	}

	if len(contextData) > 0 {
		if err := json.Unmarshal(contextData, &n.Context); err != nil {
			return model.Notification{}, fmt.Errorf("unmarshal context data: %w", err)
		}
	}

	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}
