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

// DefaultsStore persists per-channel setup defaults. One record per channel,
// overwritten in full on every session creation, never expired.
type DefaultsStore struct {
	db *sql.DB
}

func NewDefaultsStore(db *sql.DB) *DefaultsStore {
	return &DefaultsStore{db: db}
}

// Put saves or overwrites the defaults for the channel.
func (s *DefaultsStore) Put(defaults models.ChannelDefaults) error {
	blob, err := json.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to marshal channel defaults: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO channel_defaults (channel_id, defaults, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (channel_id) DO UPDATE SET
			defaults = excluded.defaults,
			updated_at = excluded.updated_at
	`, defaults.ChannelID, string(blob), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to put channel defaults: %w", err)
	}

	return nil
}

// Get returns the defaults for the channel, or nil if none have been saved.
func (s *DefaultsStore) Get(channelID string) (*models.ChannelDefaults, error) {
	var blob string
	err := s.db.QueryRow(`
		SELECT defaults FROM channel_defaults WHERE channel_id = $1
	`, channelID).Scan(&blob)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel defaults: %w", err)
	}

	var defaults models.ChannelDefaults
	if err := json.Unmarshal([]byte(blob), &defaults); err != nil {
		return nil, fmt.Errorf("failed to unmarshal channel defaults: %w", err)
	}

	return &defaults, nil
}
