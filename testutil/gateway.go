// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"errors"
	"fmt"
	"sync"

	"github.com/slack-go/slack"
)

// ErrGatewayFailure is returned by FakeGateway methods whose Fail flag is set.
var ErrGatewayFailure = errors.New("injected gateway failure")

type PostedMessage struct {
	Channel string
	Text    string
	Blocks  []slack.Block
}

type UpdatedMessage struct {
	Channel string
	TS      string
	Text    string
	Blocks  []slack.Block
}

type DeletedMessage struct {
	Channel string
	TS      string
}

type EphemeralMessage struct {
	Channel string
	User    string
	Text    string
}

type OpenedView struct {
	TriggerID string
	View      slack.ModalViewRequest
}

type ResponseMessage struct {
	URL          string
	ResponseType string
	Text         string
	Blocks       []slack.Block
}

// FakeGateway records every call for assertions and can inject transport
// failures per method. Safe for concurrent use.
type FakeGateway struct {
	mu     sync.Mutex
	nextTS int

	Posted     []PostedMessage
	Updated    []UpdatedMessage
	Deleted    []DeletedMessage
	Ephemerals []EphemeralMessage
	Views      []OpenedView
	Responses  []ResponseMessage

	FailPost      bool
	FailUpdate    bool
	FailDelete    bool
	FailEphemeral bool
	FailOpenView  bool
	FailResponse  bool
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) PostMessage(channelID, text string, blocks []slack.Block) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailPost {
		return "", ErrGatewayFailure
	}
	g.nextTS++
	ts := fmt.Sprintf("ts-%d", g.nextTS)
	g.Posted = append(g.Posted, PostedMessage{Channel: channelID, Text: text, Blocks: blocks})
	return ts, nil
}

func (g *FakeGateway) UpdateMessage(channelID, ts, text string, blocks []slack.Block) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailUpdate {
		return "", ErrGatewayFailure
	}
	g.Updated = append(g.Updated, UpdatedMessage{Channel: channelID, TS: ts, Text: text, Blocks: blocks})
	return ts, nil
}

func (g *FakeGateway) DeleteMessage(channelID, ts string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailDelete {
		return ErrGatewayFailure
	}
	g.Deleted = append(g.Deleted, DeletedMessage{Channel: channelID, TS: ts})
	return nil
}

func (g *FakeGateway) PostEphemeral(channelID, userID, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailEphemeral {
		return ErrGatewayFailure
	}
	g.Ephemerals = append(g.Ephemerals, EphemeralMessage{Channel: channelID, User: userID, Text: text})
	return nil
}

func (g *FakeGateway) OpenView(triggerID string, view slack.ModalViewRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailOpenView {
		return ErrGatewayFailure
	}
	g.Views = append(g.Views, OpenedView{TriggerID: triggerID, View: view})
	return nil
}

func (g *FakeGateway) PostResponse(responseURL, responseType, text string, blocks []slack.Block) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailResponse {
		return ErrGatewayFailure
	}
	g.Responses = append(g.Responses, ResponseMessage{URL: responseURL, ResponseType: responseType, Text: text, Blocks: blocks})
	return nil
}
