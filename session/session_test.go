package session

import (
	"errors"
	"testing"

	"github.com/danielhkuo/planning-poker/models"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		scores       []string
		wantErr      error
	}{
		{
			name:         "valid session",
			participants: []string{"U1", "U2"},
			scores:       []string{"1", "2", "3"},
		},
		{
			name:         "no participants",
			participants: []string{},
			scores:       []string{"1"},
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "no scores",
			participants: []string{"U1"},
			scores:       []string{},
			wantErr:      ErrNoScores,
		},
		{
			name:         "nil participants",
			participants: nil,
			scores:       []string{"1"},
			wantErr:      ErrNoParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("Sprint 42", "U1", "C1", tt.participants, tt.scores)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				if s != nil {
					t.Error("expected no session on validation error")
				}
				return
			}

			if s.SessionID == "" {
				t.Error("expected a generated session id")
			}
			if s.Title != "Sprint 42" || s.OrganiserUserID != "U1" || s.ChannelID != "C1" {
				t.Errorf("session fields not set: %+v", s)
			}
			if len(s.Votes) != 0 {
				t.Errorf("expected empty votes, got %v", s.Votes)
			}
		})
	}
}

func TestNewGeneratesUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := New("t", "U1", "C1", []string{"U1"}, []string{"1"})
		if err != nil {
			t.Fatal(err)
		}
		if seen[s.SessionID] {
			t.Fatalf("duplicate session id %s", s.SessionID)
		}
		seen[s.SessionID] = true
	}
}

func TestApplyVote(t *testing.T) {
	s, err := New("t", "U1", "C1", []string{"U1", "U2"}, []string{"1", "2"})
	if err != nil {
		t.Fatal(err)
	}

	if err := ApplyVote(s, "U1", "1"); err != nil {
		t.Fatalf("participant vote rejected: %v", err)
	}
	if s.Votes["U1"] != "1" {
		t.Errorf("expected vote 1 for U1, got %q", s.Votes["U1"])
	}

	// Voting again overwrites, never duplicates
	if err := ApplyVote(s, "U1", "2"); err != nil {
		t.Fatalf("re-vote rejected: %v", err)
	}
	if s.Votes["U1"] != "2" {
		t.Errorf("expected overwritten vote 2, got %q", s.Votes["U1"])
	}
	if len(s.Votes) != 1 {
		t.Errorf("expected 1 recorded vote, got %d", len(s.Votes))
	}
}

func TestApplyVoteRejectsNonParticipant(t *testing.T) {
	s, err := New("t", "U1", "C1", []string{"U1", "U2"}, []string{"1"})
	if err != nil {
		t.Fatal(err)
	}

	if err := ApplyVote(s, "U99", "1"); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
	if len(s.Votes) != 0 {
		t.Errorf("non-participant vote must not be recorded, got %v", s.Votes)
	}
}

// Votes keys stay a subset of participants after any sequence of votes,
// including rejected ones.
func TestVotesSubsetOfParticipants(t *testing.T) {
	s, err := New("t", "U1", "C1", []string{"U1", "U2", "U3"}, []string{"1", "2"})
	if err != nil {
		t.Fatal(err)
	}

	attempts := []struct{ voter, score string }{
		{"U1", "1"}, {"U99", "2"}, {"U2", "2"}, {"", "1"}, {"U1", "2"}, {"intruder", ""},
	}
	for _, a := range attempts {
		_ = ApplyVote(s, a.voter, a.score)
	}

	for voter := range s.Votes {
		if !IsParticipant(s, voter) {
			t.Errorf("vote recorded for non-participant %q", voter)
		}
	}
	if len(s.Votes) != 2 {
		t.Errorf("expected votes from U1 and U2 only, got %v", s.Votes)
	}
}

func TestIsComplete(t *testing.T) {
	s, err := New("t", "U1", "C1", []string{"U1", "U2"}, []string{"1", "2"})
	if err != nil {
		t.Fatal(err)
	}

	if IsComplete(s) {
		t.Error("fresh session must not be complete")
	}

	if err := ApplyVote(s, "U1", "1"); err != nil {
		t.Fatal(err)
	}
	if IsComplete(s) {
		t.Error("session with one of two votes must not be complete")
	}

	// An empty string is still a vote: key presence counts, not the value
	if err := ApplyVote(s, "U2", ""); err != nil {
		t.Fatal(err)
	}
	if !IsComplete(s) {
		t.Error("session with all participants voted must be complete")
	}
}

func TestHasVoted(t *testing.T) {
	s := &models.Session{
		Participants: []string{"U1", "U2"},
		Votes:        map[string]string{"U1": ""},
	}

	if !HasVoted(s, "U1") {
		t.Error("empty-string vote still counts as voted")
	}
	if HasVoted(s, "U2") {
		t.Error("U2 has not voted")
	}
}
