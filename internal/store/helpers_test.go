// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

const (
	testUserID    = "0190a1b2-0000-7000-8000-000000000001"
	testOtherID   = "0190a1b2-0000-7000-8000-000000000002"
	testProfileID = "0190a1b2-0000-7000-8000-0000000000a1"
	testPostID    = "0190a1b2-0000-7000-8000-0000000000b1"
	testEntryID   = "0190a1b2-0000-7000-8000-0000000000c1"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return newDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
