// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import "errors"

var (
	ErrCacheUnavailable = errors.New("cache is unavailable")
	ErrCorruptEntry     = errors.New("corrupt cache entry")
)
