// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the blog
// backend. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON file
// and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds authentication and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the image
	// store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance, password hashing and logging. All values are read once at startup
// and never change for the lifetime of the process.
type App struct {
	// TokenSignKey is the secret used to sign and verify access tokens.
	// Rotating it invalidates every token issued before.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// required on every verified one.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid
	// (e.g. "24h"). A negative value disables expiry.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Images holds the settings of the post image store.
	Images Images `envPrefix:"IMAGES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: "postgres://..." uses pgx,
	// "sqlite://<path>" or "file:<path>" uses sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Images holds the image upload settings. When S3Bucket is empty, images are
// written to Dir and served by the HTTP server under PublicPath.
type Images struct {
	// Env: STORAGE_IMAGES_DIR
	Dir string `env:"DIR"`

	// PublicPath is the URL prefix under which local images are served.
	// Env: STORAGE_IMAGES_PUBLIC_PATH
	PublicPath string `env:"PUBLIC_PATH"`

	// MaxUploadSize limits a multipart request body in bytes.
	// Env: STORAGE_IMAGES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// S3 holds the S3-compatible bucket settings.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds the S3-compatible object store settings used for images.
type S3 struct {
	// Env: STORAGE_IMAGES_S3_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: STORAGE_IMAGES_S3_REGION
	Region string `env:"REGION"`
	// Endpoint overrides the AWS endpoint (e.g. a MinIO address).
	// Env: STORAGE_IMAGES_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: STORAGE_IMAGES_S3_ACCESS_KEY_ID
	AccessKeyID string `env:"ACCESS_KEY_ID"`
	// Env: STORAGE_IMAGES_S3_SECRET_ACCESS_KEY
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	// PublicBaseURL is prepended to object keys to build image URLs.
	// Env: STORAGE_IMAGES_S3_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// Enabled reports whether images should be stored in S3.
func (s S3) Enabled() bool {
	return s.Bucket != ""
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from environment variables, command-line flags, the optional
// JSON file and the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
