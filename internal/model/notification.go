package model

import "time"

// OverallStatus is the notification-level aggregate state.
type OverallStatus string

// ChannelStatus is the delivery state of one channel of a notification.
type ChannelStatus string

const (
	OverallEnqueued       OverallStatus = "ENQUEUED"
	OverallProcessing     OverallStatus = "PROCESSING"
	OverallCompleted      OverallStatus = "COMPLETED"
	OverallPartialFailure OverallStatus = "PARTIAL_FAILURE"

	// OverallFailed is never produced by DeriveOverall. It exists only so that
	// metrics can count it, which keeps TotalFailed at zero.
	OverallFailed OverallStatus = "FAILED"
)

const (
	ChannelPending    ChannelStatus = "PENDING"
	ChannelProcessing ChannelStatus = "PROCESSING"
	ChannelCompleted  ChannelStatus = "COMPLETED"
	ChannelFailed     ChannelStatus = "FAILED"
)

// Valid reports whether s is one of the known channel states.
func (s ChannelStatus) Valid() bool {
	switch s {
	case ChannelPending, ChannelProcessing, ChannelCompleted, ChannelFailed:
		return true
	}
	return false
}

// NotificationRequest is the payload accepted by the gateway and carried through the queue.
type NotificationRequest struct {
	Channels     []string       `json:"channels"`      // delivery channels, processed in this order
	RecipientIDs []string       `json:"recipient_ids"` // recipients, sent to in this order
	Message      string         `json:"message"`       // free-text body
	Metadata     map[string]any `json:"metadata"`      // opaque caller data
}

// NotificationStatus is the persisted delivery state of one notification.
type NotificationStatus struct {
	NotificationID  string                   `json:"notification_id"`
	Status          OverallStatus            `json:"overall_status"`
	ChannelStatuses map[string]ChannelStatus `json:"channel_statuses"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// NewNotificationStatus builds the initial record: every channel PENDING, overall ENQUEUED.
func NewNotificationStatus(id string, channels []string, now time.Time) NotificationStatus {
	statuses := make(map[string]ChannelStatus, len(channels))
	for _, ch := range channels {
		statuses[ch] = ChannelPending
	}

	return NotificationStatus{
		NotificationID:  id,
		Status:          OverallEnqueued,
		ChannelStatuses: statuses,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// SetChannel overwrites the value of an existing channel and recomputes the overall status.
// It returns false and leaves the record untouched if the channel is not part of it.
func (n *NotificationStatus) SetChannel(channel string, status ChannelStatus, now time.Time) bool {
	if _, ok := n.ChannelStatuses[channel]; !ok {
		return false
	}

	n.ChannelStatuses[channel] = status
	n.Status = DeriveOverall(n.ChannelStatuses)
	n.UpdatedAt = now

	return true
}

// DeriveOverall computes the overall status from channel statuses:
// all COMPLETED gives COMPLETED, otherwise any FAILED gives PARTIAL_FAILURE,
// otherwise PROCESSING. ENQUEUED is never derived.
func DeriveOverall(channels map[string]ChannelStatus) OverallStatus {
	allCompleted := true
	anyFailed := false

	for _, s := range channels {
		if s != ChannelCompleted {
			allCompleted = false
		}
		if s == ChannelFailed {
			anyFailed = true
		}
	}

	switch {
	case allCompleted:
		return OverallCompleted
	case anyFailed:
		return OverallPartialFailure
	default:
		return OverallProcessing
	}
}
