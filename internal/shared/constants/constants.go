// Package constants defines shared constant values used across layers.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database table names
const (
	TableUsers         = "users"
	TableSubscriptions = "subscriptions"
)

// Gin context keys
const (
	ContextKeyUserSID   = "user_sid"
	ContextKeyRequestID = "request_id"
)

// Pagination limits
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
