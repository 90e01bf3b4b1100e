package model

// Scope identifies the caller of an operation. Quota and history are
// partitioned by scope.
type Scope struct {
	UserID string
}

// Environment names for deployment modes.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
