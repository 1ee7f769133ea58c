// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress      = ":8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultTokenIssuer      = "blog-backend"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultLogLevel         = "info"
	defaultImagesDir        = "./uploads"
	defaultImagesPublicPath = "/uploads"
	defaultMaxUploadSize    = 5 << 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			Images: Images{
				Dir:           defaultImagesDir,
				PublicPath:    defaultImagesPublicPath,
				MaxUploadSize: defaultMaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
