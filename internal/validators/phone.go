// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"

	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

var mobilePhone = regexp.MustCompile(`^1[3-9]\d{9}$`)

// MobilePhone requires an 11-digit mobile number starting with 13-19.
func MobilePhone() PatternRule {
	return Pattern("mobile_phone", mobilePhone, "Invalid mobile phone number format")
}

// UUID requires a canonical hyphenated UUID.
func UUID() PatternRule {
	return Predicate("uuid", utils.IsUUID, "must be a valid UUID")
}
