// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session is the pure state machine for a planning poker session.

A session is open from creation until every participant has voted, at which
point the dispatcher reveals results and deletes it. There is no stored
status field: a session is live exactly while its record exists in the store.

# Operations

	s, err := session.New(title, organiser, channel, participants, scores)
	err = session.ApplyVote(s, voterID, score)   // overwrite, never append
	done := session.IsComplete(s)                // all participants voted

New fails with ErrNoParticipants/ErrNoScores on empty inputs; callers
suppress those silently (an abandoned setup dialog is not an error the user
needs to hear about). ApplyVote fails with ErrNotParticipant for outsiders,
which callers report ephemerally to the actor only.

Functions here never touch storage or Slack; they transform the Session
value and leave persistence to the caller.
*/
package session
