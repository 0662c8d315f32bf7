package status

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

var statusColumns = []string{"notification_id", "overall_status", "channel_statuses", "created_at", "updated_at"}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock, time.Time) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	return repo, mock, now
}

func TestCreateInitial(t *testing.T) {
	repo, mock, now := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO notification_status`)).
		WithArgs("id-1", "ENQUEUED", `{"email":"PENDING","sms":"PENDING"}`, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateInitial(context.Background(), "id-1", []string{"email", "sms"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInitial_Duplicate(t *testing.T) {
	repo, mock, _ := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO notification_status`)).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateInitial(context.Background(), "id-1", []string{"email"})
	assert.ErrorIs(t, err, ErrDuplicateNotification)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInitial_DBError(t *testing.T) {
	repo, mock, _ := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO notification_status`)).
		WillReturnError(errors.New("connection refused"))

	err := repo.CreateInitial(context.Background(), "id-1", []string{"email"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateNotification)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateChannel(t *testing.T) {
	repo, mock, now := setupMockDB(t)
	created := now.Add(-time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(statusColumns).
			AddRow("id-1", "ENQUEUED", []byte(`{"email":"PENDING","sms":"PENDING"}`), created, created))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notification_status`)).
		WithArgs("PARTIAL_FAILURE", `{"email":"PENDING","sms":"FAILED"}`, now, "id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s, err := repo.UpdateChannel(context.Background(), "id-1", "sms", model.ChannelFailed)
	require.NoError(t, err)

	assert.Equal(t, model.OverallPartialFailure, s.Status)
	assert.Equal(t, model.ChannelFailed, s.ChannelStatuses["sms"])
	assert.Equal(t, model.ChannelPending, s.ChannelStatuses["email"])
	assert.Equal(t, created, s.CreatedAt)
	assert.Equal(t, now, s.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateChannel_AllCompleted(t *testing.T) {
	repo, mock, now := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(statusColumns).
			AddRow("id-1", "PROCESSING", []byte(`{"email":"COMPLETED","sms":"PROCESSING"}`), now, now))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notification_status`)).
		WithArgs("COMPLETED", `{"email":"COMPLETED","sms":"COMPLETED"}`, now, "id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s, err := repo.UpdateChannel(context.Background(), "id-1", "sms", model.ChannelCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.OverallCompleted, s.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateChannel_NotFound(t *testing.T) {
	repo, mock, _ := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.UpdateChannel(context.Background(), "missing", "sms", model.ChannelFailed)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateChannel_UnknownChannel(t *testing.T) {
	repo, mock, now := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(statusColumns).
			AddRow("id-1", "ENQUEUED", []byte(`{"email":"PENDING"}`), now, now))
	mock.ExpectRollback()

	_, err := repo.UpdateChannel(context.Background(), "id-1", "voice", model.ChannelFailed)
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateChannel_UpdateFails(t *testing.T) {
	repo, mock, now := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(statusColumns).
			AddRow("id-1", "ENQUEUED", []byte(`{"email":"PENDING"}`), now, now))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notification_status`)).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	_, err := repo.UpdateChannel(context.Background(), "id-1", "email", model.ChannelProcessing)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock, now := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM notification_status`)).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(statusColumns).
			AddRow("id-1", "ENQUEUED", []byte(`{"email":"PENDING"}`), now, now))

	s, err := repo.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", s.NotificationID)
	assert.Equal(t, model.OverallEnqueued, s.Status)
	assert.Equal(t, map[string]model.ChannelStatus{"email": model.ChannelPending}, s.ChannelStatuses)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM notification_status`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	repo, mock, _ := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY overall_status`)).
		WillReturnRows(sqlmock.NewRows([]string{"overall_status", "count"}).
			AddRow("COMPLETED", 4).
			AddRow("PARTIAL_FAILURE", 1))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[model.OverallStatus]int64{
		model.OverallCompleted:      4,
		model.OverallPartialFailure: 1,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus_QueryError(t *testing.T) {
	repo, mock, _ := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY overall_status`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CountByStatus(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
