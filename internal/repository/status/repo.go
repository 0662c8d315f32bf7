package status

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrChannelNotFound       = errors.New("channel not found in notification")
	ErrDuplicateNotification = errors.New("notification already exists")
)

const uniqueViolation = "23505"

// Repository persists notification statuses in the notification_status table.
type Repository struct {
	db  *dbpg.DB
	now func() time.Time
}

// NewRepository creates a new status repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// CreateInitial inserts a record with every channel PENDING and overall ENQUEUED.
func (r *Repository) CreateInitial(ctx context.Context, id string, channels []string) error {
	query := `
		INSERT INTO notification_status (
		    notification_id, overall_status, channel_statuses, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $4);
    `

	s := model.NewNotificationStatus(id, channels, r.now())

	raw, err := json.Marshal(s.ChannelStatuses)
	if err != nil {
		return fmt.Errorf("marshal channel statuses: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, s.NotificationID, string(s.Status), string(raw), s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateNotification
		}

		return fmt.Errorf("failed to create notification status: %w", err)
	}

	return nil
}

// UpdateChannel sets one channel's status and recomputes the overall status.
//
// The read and the write run in one transaction holding the row lock, so concurrent
// updates of different channels of the same notification do not overwrite each other.
// It returns ErrNotificationNotFound or ErrChannelNotFound without writing anything.
func (r *Repository) UpdateChannel(
	ctx context.Context, id, channel string, value model.ChannelStatus,
) (model.NotificationStatus, error) {
	selectQuery := `
		SELECT notification_id, overall_status, channel_statuses, created_at, updated_at
		FROM notification_status
		WHERE notification_id = $1
		FOR UPDATE;
    `

	updateQuery := `
		UPDATE notification_status
		SET overall_status = $1, channel_statuses = $2, updated_at = $3
		WHERE notification_id = $4;
    `

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.NotificationStatus{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	s, err := scanStatus(tx.QueryRowContext(ctx, selectQuery, id))
	if err != nil {
		return model.NotificationStatus{}, err
	}

	if !s.SetChannel(channel, value, r.now()) {
		return model.NotificationStatus{}, ErrChannelNotFound
	}

	raw, err := json.Marshal(s.ChannelStatuses)
	if err != nil {
		return model.NotificationStatus{}, fmt.Errorf("marshal channel statuses: %w", err)
	}

	if _, err := tx.ExecContext(ctx, updateQuery, string(s.Status), string(raw), s.UpdatedAt, id); err != nil {
		return model.NotificationStatus{}, fmt.Errorf("failed to update notification status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.NotificationStatus{}, fmt.Errorf("failed to commit status update: %w", err)
	}

	return s, nil
}

// GetByID retrieves a notification status by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (model.NotificationStatus, error) {
	query := `
		SELECT notification_id, overall_status, channel_statuses, created_at, updated_at
		FROM notification_status
		WHERE notification_id = $1;
    `

	return scanStatus(r.db.Master.QueryRowContext(ctx, query, id))
}

// CountByStatus returns the number of records per overall status.
func (r *Repository) CountByStatus(ctx context.Context) (map[model.OverallStatus]int64, error) {
	query := `
		SELECT overall_status, COUNT(*)
		FROM notification_status
		GROUP BY overall_status;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count notification statuses: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.OverallStatus]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}

		counts[model.OverallStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStatus(row rowScanner) (model.NotificationStatus, error) {
	var (
		s       model.NotificationStatus
		overall string
		raw     []byte
	)

	err := row.Scan(&s.NotificationID, &overall, &raw, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotificationStatus{}, ErrNotificationNotFound
		}

		return model.NotificationStatus{}, fmt.Errorf("failed to get notification status: %w", err)
	}

	if err := json.Unmarshal(raw, &s.ChannelStatuses); err != nil {
		return model.NotificationStatus{}, fmt.Errorf("unmarshal channel statuses: %w", err)
	}

	s.Status = model.OverallStatus(overall)

	return s, nil
}
