// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/sethvargo/go-retry"
)

const (
	txMaxRetries  = 3
	txBaseBackoff = 50 * time.Millisecond
)

// withTx runs fn inside a transaction and commits it. When fn or the commit
// fails with an error the classificator marks as retryable (serialization
// failure, deadlock, lost connection), the whole transaction is replayed
// with exponential backoff.
func (db *DB) withTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)
	backoff := retry.WithMaxRetries(txMaxRetries, retry.NewExponential(txBaseBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.runTx(ctx, fn)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", funcName).Msg("retrying transaction")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
