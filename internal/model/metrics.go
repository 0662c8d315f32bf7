package model

// NotificationMetrics is a rollup of persisted statuses. It is derived on every call, never stored.
type NotificationMetrics struct {
	TotalSent    int64                   `json:"total_sent"`
	TotalSuccess int64                   `json:"total_success"`
	TotalFailed  int64                   `json:"total_failed"`
	ByStatus     map[OverallStatus]int64 `json:"by_status"`
}

// NewMetrics builds metrics from per-overall-status counts.
//
// TotalFailed counts records whose overall status is exactly FAILED. DeriveOverall never
// produces that value, so the counter stays at zero unless such rows were written externally.
func NewMetrics(counts map[OverallStatus]int64) NotificationMetrics {
	m := NotificationMetrics{ByStatus: make(map[OverallStatus]int64, len(counts))}

	for status, count := range counts {
		m.ByStatus[status] = count
		m.TotalSent += count

		switch status {
		case OverallCompleted:
			m.TotalSuccess += count
		case OverallFailed:
			m.TotalFailed += count
		}
	}

	return m
}
