// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by request decoding. Their messages are sent to
// the client.
var (
	ErrInvalidJSON      = errors.New("Invalid JSON was passed")
	ErrInvalidMultipart = errors.New("Invalid multipart form")
	ErrBodyTooLarge     = errors.New("Request body too large")
)
