// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

const (
	testUserID    = "0190a1b2-0000-7000-8000-000000000001"
	testOtherID   = "0190a1b2-0000-7000-8000-000000000002"
	testThirdID   = "0190a1b2-0000-7000-8000-000000000003"
	testPostID    = "0190a1b2-0000-7000-8000-0000000000b1"
	testCommentID = "0190a1b2-0000-7000-8000-0000000000c1"
	testEntryID   = "0190a1b2-0000-7000-8000-0000000000d1"
	testNewID     = "0190a1b2-0000-7000-8000-0000000000e1"
	testSignKey   = "test-sign-key"
)

// staticIDs hands out the same id every time.
type staticIDs string

func (s staticIDs) Generate() string { return string(s) }

func strPtr(s string) *string { return &s }
