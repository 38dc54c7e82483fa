// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types for planning poker sessions.

# Domain Types

  - Session: one estimation round — title, organiser, channel, participants,
    allowed scores, collected votes, and the Slack timestamp of the message
    currently displaying it
  - ChannelDefaults: last-used participants and scores per channel, used to
    pre-fill the next setup dialog
  - ErrorResponse: error, message (JSON error body)

# Invariants

Votes keys are always a subset of Participants; a vote from a non-participant
is rejected before it is recorded. Participants and Scores are fixed at
creation and never mutated afterward. SessionID is unique across live
sessions and is the storage key.

# Constants

DefaultScores is the Fibonacci score set used when a channel has no saved
defaults:

	0 1 2 3 5 8 13 21 34 55 89 144
*/
package models
