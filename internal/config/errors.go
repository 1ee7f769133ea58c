package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrEmptyTokenSignKey indicates that no token signing secret was provided.
	ErrEmptyTokenSignKey = errors.New("token sign key is required")
	// ErrEmptyDSN indicates that no database connection string was provided.
	ErrEmptyDSN = errors.New("database DSN is required")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside the
	// range supported by the algorithm.
	ErrInvalidPasswordHashCost = errors.New("invalid password hash cost")
	// ErrNoServerAddress indicates that neither HTTP nor gRPC address is set.
	ErrNoServerAddress = errors.New("no server address configured")
	// ErrInvalidImagesConfigs indicates an unusable image storage setup.
	ErrInvalidImagesConfigs = errors.New("invalid images configuration")
)
