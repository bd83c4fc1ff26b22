// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package api

import "errors"

// Common API errors
var (
	// ErrBodyTooLarge indicates a request body exceeded maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidTopN indicates a top_n parameter that is not an integer.
	ErrInvalidTopN = errors.New("top_n must be an integer")
)
