// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar/"

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GravatarURL returns the avatar URL for email: 200px, PG rated, with the
// "mystery man" fallback image.
//
//	https://www.gravatar.com/avatar/<md5(lower(trim(email)))>?s=200&r=pg&d=mm
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(NormalizeEmail(email)))
	return gravatarBaseURL + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
