package component

import "context"

// HealthStatus is the health state of a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health holds health information for a component.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component is a lifecycle-managed part of the process.
type Component interface {
	// Name returns the unique registry name.
	Name() string

	Start(ctx context.Context) error

	// Stop releases resources. It must be safe to call after a failed Start.
	Stop(ctx context.Context) error

	Health(ctx context.Context) Health
}

// Description is a one-line summary of a component.
type Description struct {
	// Name is the display name. Empty means Name().
	Name string
	// Type categorizes the component, e.g. "httpclient".
	Type string
	// Details is a short human-readable summary such as "https://host:9200".
	Details string
	// Port is the primary port, 0 if not applicable.
	Port int
}

// Describable is optionally implemented by components that can summarize
// their configuration.
type Describable interface {
	Describe() Description
}
