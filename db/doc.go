// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

Two tables:

  - session: live session state as a JSON blob keyed by session id, with
    channel_id for list filtering and expires_at (unix seconds) for the
    7-day retention window
  - channel_defaults: last-used participants/scores per channel, no expiry

The DDL uses IF NOT EXISTS and unix-second integer timestamps so the same
statements run on both sqlite (dev/tests) and postgres (production).

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		// handle
	}
*/
package db
