package domain

import "time"

// HealthStatus is the outcome of the most recent probe
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusWarning   HealthStatus = "warning"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthState is the monitor's record of probe results.
// ChecksPerformed only ever grows, by one per probe cycle.
type HealthState struct {
	Status          HealthStatus
	LastCheck       time.Time
	ChecksPerformed uint64
	LastError       *string
}

// HealthResponse is the body served by GET /health
type HealthResponse struct {
	Status          HealthStatus `json:"status"`
	Message         string       `json:"message"`
	LastCheck       string       `json:"last_check"`
	ChecksPerformed uint64       `json:"checks_performed"`
	LastError       *string      `json:"last_error"`
	Timestamp       string       `json:"timestamp"`
}

// NewHealthResponse builds the response body from a snapshot taken at now
func NewHealthResponse(state HealthState, now time.Time) HealthResponse {
	return HealthResponse{
		Status:          state.Status,
		Message:         "PDF text extraction server health status",
		LastCheck:       state.LastCheck.Format(time.RFC3339),
		ChecksPerformed: state.ChecksPerformed,
		LastError:       state.LastError,
		Timestamp:       now.Format(time.RFC3339),
	}
}
