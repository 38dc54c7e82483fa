// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Session state is stored as a JSON blob keyed by session id, with the
// channel id lifted out for list filtering and an expiry for the 7-day
// retention window. Timestamps are unix seconds so the same DDL works on
// both sqlite and postgres.
const schema = `
-- Sessions
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    channel_id TEXT NOT NULL,
    state TEXT NOT NULL,
    expires_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_channel_id ON session(channel_id);
CREATE INDEX IF NOT EXISTS idx_session_expires_at ON session(expires_at);

-- Channel defaults
CREATE TABLE IF NOT EXISTS channel_defaults (
    channel_id TEXT PRIMARY KEY,
    defaults TEXT NOT NULL,
    updated_at BIGINT NOT NULL
);
`
