package models

// DefaultScores is the score set offered when a channel has no saved
// defaults. Fibonacci, the planning poker classic.
var DefaultScores = []string{"0", "1", "2", "3", "5", "8", "13", "21", "34", "55", "89", "144"}

// Domain types

// Session is one estimation round. Participants and Scores are fixed at
// creation; Votes grows as votes arrive, keyed by Slack user id. Votes keys
// are always a subset of Participants.
type Session struct {
	SessionID       string            `json:"session_id"`
	Title           string            `json:"title"`
	OrganiserUserID string            `json:"organiser_user_id"`
	ChannelID       string            `json:"channel_id"`
	Participants    []string          `json:"participants"`
	Scores          []string          `json:"scores"`
	Votes           map[string]string `json:"votes"`
	// MessageTS is the Slack timestamp of the message currently showing this
	// session. Updated whenever the view is (re)posted.
	MessageTS string `json:"message_ts"`
}

// ChannelDefaults remembers the last-used participants and scores for a
// channel, used to pre-fill the next session's setup dialog. Overwritten in
// full every time a session is created in the channel.
type ChannelDefaults struct {
	ChannelID    string   `json:"channel_id"`
	Participants []string `json:"participants"`
	Scores       []string `json:"scores"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
