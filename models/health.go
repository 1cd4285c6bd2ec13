package models

// Health status values reported by GET /health.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthStatus is the body of the GET /health response.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// IsHealthy reports whether every checked dependency is reachable.
func (h HealthStatus) IsHealthy() bool {
	return h.Status == HealthStatusHealthy
}
