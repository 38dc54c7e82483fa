// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"strings"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/planning-poker/models"
)

// ModalCallbackID identifies setup dialog submissions on the interactivity
// endpoint.
const ModalCallbackID = "PlanningPokerModal"

// Block and action ids for the setup dialog inputs.
const (
	TitleBlockID         = "title"
	TitleActionID        = "title_text"
	ParticipantsBlockID  = "participants"
	ParticipantsActionID = "participants_text"
	ScoresBlockID        = "scores"
	ScoresActionID       = "scores_text"
)

// ModalRequest builds the session setup dialog, pre-filled with the command
// text as title and the channel's saved defaults (or the Fibonacci fallback).
// The channel id rides along in private_metadata because the submission
// payload doesn't otherwise carry it.
func ModalRequest(initialTitle string, defaults models.ChannelDefaults) slack.ModalViewRequest {
	titleInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "Name of this planning poker session", false, false),
		TitleActionID,
	)
	titleInput.InitialValue = initialTitle
	titleBlock := slack.NewInputBlock(TitleBlockID,
		slack.NewTextBlockObject(slack.PlainTextType, "Title", false, false),
		nil,
		titleInput,
	)

	participantsInput := slack.NewOptionsMultiSelectBlockElement(
		slack.MultiOptTypeUser,
		slack.NewTextBlockObject(slack.PlainTextType, "Participant names", false, false),
		ParticipantsActionID,
	)
	participantsInput.InitialUsers = defaults.Participants
	participantsBlock := slack.NewInputBlock(ParticipantsBlockID,
		slack.NewTextBlockObject(slack.PlainTextType, "Participants", false, false),
		nil,
		participantsInput,
	)

	scoresInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "Enter scores separated by space", false, false),
		ScoresActionID,
	)
	scoresInput.InitialValue = strings.Join(defaults.Scores, " ")
	scoresBlock := slack.NewInputBlock(ScoresBlockID,
		slack.NewTextBlockObject(slack.PlainTextType, "Scores", false, false),
		slack.NewTextBlockObject(slack.PlainTextType, "Enter scores separated by space", false, false),
		scoresInput,
	)

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		Title:           slack.NewTextBlockObject(slack.PlainTextType, "Planning Poker", false, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "Start Session", false, false),
		Blocks:          slack.Blocks{BlockSet: []slack.Block{titleBlock, participantsBlock, scoresBlock}},
		PrivateMetadata: defaults.ChannelID,
		CallbackID:      ModalCallbackID,
	}
}
