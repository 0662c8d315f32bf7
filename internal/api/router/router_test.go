package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/notification-dispatcher/internal/api/dto"
	"github.com/aliskhannn/notification-dispatcher/internal/api/handlers/notification"
	"github.com/aliskhannn/notification-dispatcher/internal/config"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/repository/status"
	notifsvc "github.com/aliskhannn/notification-dispatcher/internal/service/notification"
)

type discardQueue struct{}

func (discardQueue) Publish(context.Context, string, []byte) error { return nil }

func setupRouter(t *testing.T) (http.Handler, *status.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := status.NewMemoryRepository()
	svc := notifsvc.NewService(repo, discardQueue{})
	cfg := &config.Config{Retry: retry.Strategy{Attempts: 1, Delay: time.Millisecond}}

	return New(notification.NewHandler(svc, validator.New(), cfg)), repo
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, &buf))
	return w
}

func TestRouter_NotifyThenStatus(t *testing.T) {
	h, _ := setupRouter(t)

	w := do(t, h, http.MethodPost, "/notify", map[string]any{
		"channels":      []string{"email", "sms"},
		"recipient_ids": []string{"u1"},
		"message":       "hi",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var accepted dto.NotifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accepted))
	assert.Equal(t, "enqueued", accepted.Status)
	require.NotEmpty(t, accepted.NotificationID)

	w = do(t, h, http.MethodGet, "/status/"+accepted.NotificationID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var s model.NotificationStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, model.OverallEnqueued, s.Status)
	assert.Equal(t, map[string]model.ChannelStatus{
		"email": model.ChannelPending,
		"sms":   model.ChannelPending,
	}, s.ChannelStatuses)
}

func TestRouter_StatusUnknownID(t *testing.T) {
	h, _ := setupRouter(t)

	w := do(t, h, http.MethodGet, "/status/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_WebhookMarksChannelFailed(t *testing.T) {
	h, repo := setupRouter(t)
	require.NoError(t, repo.CreateInitial(context.Background(), "id-1", []string{"email", "sms"}))

	w := do(t, h, http.MethodPost, "/webhook/callback", map[string]string{
		"notification_id": "id-1",
		"channel":         "sms",
		"status":          "FAILED",
	})
	require.Equal(t, http.StatusOK, w.Code)

	s, err := repo.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, model.OverallPartialFailure, s.Status)
	assert.Equal(t, model.ChannelFailed, s.ChannelStatuses["sms"])
	assert.Equal(t, model.ChannelPending, s.ChannelStatuses["email"])
}

func TestRouter_WebhookUnknownIDIsNoop(t *testing.T) {
	h, repo := setupRouter(t)

	w := do(t, h, http.MethodPost, "/webhook/callback", map[string]string{
		"notification_id": "missing",
		"channel":         "sms",
		"status":          "COMPLETED",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"updated"}`, w.Body.String())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, status.ErrNotificationNotFound)
}

func TestRouter_MetricsAndHealth(t *testing.T) {
	h, repo := setupRouter(t)
	require.NoError(t, repo.CreateInitial(context.Background(), "id-1", []string{"push"}))

	w := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var m model.NotificationMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, int64(1), m.TotalSent)
	assert.Equal(t, int64(1), m.ByStatus[model.OverallEnqueued])

	w = do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
