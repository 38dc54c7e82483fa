// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists session state and channel defaults.

# Session Store

Sessions live in a single table as JSON blobs keyed by session id:

	sessions := store.NewSessionStore(db)
	err := sessions.Put(sess)              // upsert, refreshes expiry
	sess, err := sessions.Get(id)          // nil when absent or expired
	all, err := sessions.ListAll()         // unordered scan, caller filters
	err = sessions.Delete(id)              // absent is not an error
	n, err := sessions.PurgeExpired()      // run from the janitor in main

Records expire SessionTTL (7 days) after their last Put. Expired rows are
invisible to Get/ListAll immediately; PurgeExpired reclaims the space.

# Defaults Store

One record per channel, overwritten in full, no expiry:

	defaults := store.NewDefaultsStore(db)
	err := defaults.Put(models.ChannelDefaults{...})
	d, err := defaults.Get(channelID)      // nil when never saved

# Concurrency

There is no per-record locking. A vote is read-modify-write on the whole
session record, so concurrent votes can race and the later Put wins. This is
an accepted trade-off for the workload; the handlers package has tests
pinning down the behavior.
*/
package store
