// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/danielhkuo/planning-poker/models"
)

var (
	// ErrNoParticipants and ErrNoScores are validation errors. Callers
	// suppress them silently rather than surfacing an error to the user:
	// an incomplete setup dialog simply produces no session.
	ErrNoParticipants = errors.New("session requires at least one participant")
	ErrNoScores       = errors.New("session requires at least one score")

	// ErrNotParticipant is returned when someone outside the participant
	// list tries to vote. Reported ephemerally to the voter only; shared
	// state is never touched.
	ErrNotParticipant = errors.New("voter is not a participant in this session")
)

// New creates an open session with a fresh id and no votes.
func New(title, organiserUserID, channelID string, participants, scores []string) (*models.Session, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if len(scores) == 0 {
		return nil, ErrNoScores
	}

	return &models.Session{
		SessionID:       uuid.NewString(),
		Title:           title,
		OrganiserUserID: organiserUserID,
		ChannelID:       channelID,
		Participants:    participants,
		Scores:          scores,
		Votes:           map[string]string{},
	}, nil
}

// ApplyVote records a vote for voterID, overwriting any previous vote from
// the same voter. Returns ErrNotParticipant if voterID is not in the
// session's participant list. Persistence is the caller's concern.
func ApplyVote(s *models.Session, voterID, score string) error {
	if !IsParticipant(s, voterID) {
		return ErrNotParticipant
	}
	if s.Votes == nil {
		s.Votes = map[string]string{}
	}
	s.Votes[voterID] = score
	return nil
}

// IsParticipant reports whether userID may vote in this session.
func IsParticipant(s *models.Session, userID string) bool {
	for _, p := range s.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// HasVoted reports whether userID has a recorded vote. Key presence counts;
// an empty string is a valid vote.
func HasVoted(s *models.Session, userID string) bool {
	_, ok := s.Votes[userID]
	return ok
}

// IsComplete reports whether every participant has voted. Only key presence
// matters, not the vote value.
func IsComplete(s *models.Session) bool {
	return len(s.Votes) == len(s.Participants)
}
