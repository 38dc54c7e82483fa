// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slackapi

import (
	"github.com/slack-go/slack"
)

// Gateway is the messaging surface the dispatchers need. The real
// implementation is Client; tests use a recording fake.
type Gateway interface {
	// PostMessage posts a message and returns its timestamp.
	PostMessage(channelID, text string, blocks []slack.Block) (string, error)
	// UpdateMessage replaces an existing message in place and returns the
	// (possibly new) timestamp.
	UpdateMessage(channelID, ts, text string, blocks []slack.Block) (string, error)
	// DeleteMessage removes a message. Callers treat failures as best-effort
	// where the message may already be gone.
	DeleteMessage(channelID, ts string) error
	// PostEphemeral sends a message only the given user can see.
	PostEphemeral(channelID, userID, text string) error
	// OpenView opens a modal dialog against the interaction's trigger id.
	OpenView(triggerID string, view slack.ModalViewRequest) error
	// PostResponse posts to a slash command's response_url. responseType is
	// "ephemeral" or "in_channel".
	PostResponse(responseURL, responseType, text string, blocks []slack.Block) error
}
