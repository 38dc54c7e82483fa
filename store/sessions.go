// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/planning-poker/models"
)

// SessionTTL is how long an abandoned session survives before the purge
// removes it. Guards against orphaned state from crashed handlers.
const SessionTTL = 7 * 24 * time.Hour

// SessionStore persists sessions keyed by session id. Writes are whole-record
// read-modify-write with no per-record locking: two votes landing in the same
// instant race and the later Put wins. Acceptable for this workload's low
// concurrency; see the concurrency tests in handlers.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Put saves or overwrites the session and refreshes its expiry.
func (s *SessionStore) Put(sess *models.Session) error {
	state, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	expiresAt := time.Now().Add(SessionTTL).Unix()
	_, err = s.db.Exec(`
		INSERT INTO session (id, channel_id, state, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			channel_id = excluded.channel_id,
			state = excluded.state,
			expires_at = excluded.expires_at
	`, sess.SessionID, sess.ChannelID, string(state), expiresAt)
	if err != nil {
		return fmt.Errorf("failed to put session: %w", err)
	}

	return nil
}

// Get returns the session with the given id, or nil if it does not exist or
// has expired.
func (s *SessionStore) Get(sessionID string) (*models.Session, error) {
	var state string
	err := s.db.QueryRow(`
		SELECT state FROM session WHERE id = $1 AND expires_at > $2
	`, sessionID, time.Now().Unix()).Scan(&state)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(state), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// ListAll returns every live session, in scan order. Callers filter by
// channel.
// TODO filtering by channel in SQL would avoid scanning every session.
func (s *SessionStore) ListAll() ([]models.Session, error) {
	rows, err := s.db.Query(`
		SELECT state FROM session WHERE expires_at > $1
	`, time.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var state string
		if err := rows.Scan(&state); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		var sess models.Session
		if err := json.Unmarshal([]byte(state), &sess); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	return sessions, nil
}

// Delete removes the session. Deleting an absent session is not an error:
// a duplicate vote landing after completion must see "not found", not a
// failure to escalate.
func (s *SessionStore) Delete(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeExpired deletes every expired session and returns how many went.
func (s *SessionStore) PurgeExpired() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM session WHERE expires_at <= $1`, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged sessions: %w", err)
	}
	return n, nil
}
