// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrEmptyTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrEmptyDSN
	}

	cost := cfg.App.PasswordHashCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d", ErrInvalidPasswordHashCost, cost)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrNoServerAddress
	}

	images := cfg.Storage.Images
	if images.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidImagesConfigs)
	}
	if !images.S3.Enabled() && images.Dir == "" {
		return fmt.Errorf("%w: images dir or S3 bucket is required", ErrInvalidImagesConfigs)
	}
	if images.S3.Enabled() && images.S3.Region == "" {
		return fmt.Errorf("%w: S3 region is required", ErrInvalidImagesConfigs)
	}

	return nil
}
