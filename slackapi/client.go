// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slackapi

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Client implements Gateway over the Slack Web API. One Client is constructed
// in main and shared for the lifetime of the process; the underlying
// slack.Client is safe for concurrent use.
type Client struct {
	api *slack.Client
}

func NewClient(botToken string) *Client {
	return &Client{api: slack.New(botToken)}
}

func (c *Client) PostMessage(channelID, text string, blocks []slack.Block) (string, error) {
	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if len(blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(blocks...))
	}
	_, ts, err := c.api.PostMessage(channelID, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}
	return ts, nil
}

func (c *Client) UpdateMessage(channelID, ts, text string, blocks []slack.Block) (string, error) {
	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if len(blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(blocks...))
	}
	_, newTS, _, err := c.api.UpdateMessage(channelID, ts, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to update message: %w", err)
	}
	return newTS, nil
}

func (c *Client) DeleteMessage(channelID, ts string) error {
	_, _, err := c.api.DeleteMessage(channelID, ts)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func (c *Client) PostEphemeral(channelID, userID, text string) error {
	_, err := c.api.PostEphemeral(channelID, userID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post ephemeral message: %w", err)
	}
	return nil
}

func (c *Client) OpenView(triggerID string, view slack.ModalViewRequest) error {
	_, err := c.api.OpenView(triggerID, view)
	if err != nil {
		return fmt.Errorf("failed to open view: %w", err)
	}
	return nil
}

func (c *Client) PostResponse(responseURL, responseType, text string, blocks []slack.Block) error {
	msg := &slack.WebhookMessage{
		ResponseType: responseType,
		Text:         text,
	}
	if len(blocks) > 0 {
		msg.Blocks = &slack.Blocks{BlockSet: blocks}
	}
	if err := slack.PostWebhook(responseURL, msg); err != nil {
		return fmt.Errorf("failed to post to response url: %w", err)
	}
	return nil
}
