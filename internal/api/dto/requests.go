package dto

// NotifyRequest is the body of POST /notify.
type NotifyRequest struct {
	Channels     []string       `json:"channels" validate:"required,min=1,dive,required"`
	RecipientIDs []string       `json:"recipient_ids" validate:"required,min=1"`
	Message      string         `json:"message"`
	Metadata     map[string]any `json:"metadata"`
}

// NotifyResponse is returned once a notification has been accepted for delivery.
type NotifyResponse struct {
	NotificationID string `json:"notification_id"`
	Status         string `json:"status"`
}

// WebhookRequest is a delivery callback for one channel of a notification.
type WebhookRequest struct {
	NotificationID string `json:"notification_id" validate:"required"`
	Channel        string `json:"channel" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=PENDING PROCESSING COMPLETED FAILED"`
}

// StatusResponse is a short acknowledgement body.
type StatusResponse struct {
	Status string `json:"status"`
}
