// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// ErrMalformedParam is returned when a path or query parameter is present
// but cannot be parsed into its expected type.
var ErrMalformedParam = errors.New("malformed parameter")
