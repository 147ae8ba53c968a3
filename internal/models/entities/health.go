package entities

import "time"

// DependencyStatus is the health of one backing dependency.
type DependencyStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthReport is the /healthCheck body.
type HealthReport struct {
	Status       string                      `json:"status"`
	Backend      string                      `json:"lookup_backend"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
	UpSince      time.Time                   `json:"up_since"`
	Uptime       string                      `json:"uptime"`
}
